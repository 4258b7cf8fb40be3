// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"context"
	"crypto/ed25519"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chriamue/iota-identity-examples/lib/cli"
	"github.com/chriamue/iota-identity-examples/lib/identity"
)

// proofType is the proof suite name for JWS-backed proofs.
const proofType = "JsonWebSignature2020"

// Resolver fetches the DID document for an issuer so its public key
// can check a credential's signature. Satisfied by
// identity.Service.ResolveIdentity.
type Resolver func(ctx context.Context, did identity.DID) (*identity.Document, error)

// Sign attaches an EdDSA VC-JWT proof to the credential, produced
// with the issuer's private key. Any existing proof is replaced.
func Sign(credential *Credential, privateKey ed25519.PrivateKey, now time.Time) error {
	if credential.Issuer.IsZero() {
		return cli.Validation("cannot sign a credential without an issuer")
	}
	subject := credential.SubjectID()
	if subject.IsZero() {
		return cli.Validation("cannot sign a credential without a subject id claim")
	}

	claims := jwt.MapClaims{
		"iss": credential.Issuer.String(),
		"sub": subject.String(),
		"jti": credential.ID,
		"nbf": jwt.NewNumericDate(now),
		"iat": jwt.NewNumericDate(now),
		"vc": map[string]any{
			"@context":          credential.Context,
			"type":              credential.Type,
			"credentialSubject": credential.CredentialSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(privateKey)
	if err != nil {
		return cli.Internal("signing credential %s: %v", credential.ID, err)
	}

	credential.Proof = &Proof{
		Type:               proofType,
		Created:            now.UTC().Format(time.RFC3339),
		VerificationMethod: credential.Issuer.SigningMethodID(),
		JWS:                signed,
	}
	return nil
}

// Verify checks the credential's JWS against the issuer's public key,
// obtained by resolving the issuer's DID document. Returns nil when
// the proof is valid and names this credential.
func Verify(ctx context.Context, credential *Credential, resolve Resolver) error {
	if credential.Proof == nil {
		return cli.Validation("credential %s has no proof", credential.ID)
	}

	document, err := resolve(ctx, credential.Issuer)
	if err != nil {
		return err
	}
	publicKey, err := document.PublicKey()
	if err != nil {
		return err
	}

	token, err := jwt.Parse(credential.Proof.JWS,
		func(token *jwt.Token) (any, error) { return publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
	)
	if err != nil {
		return cli.Validation("credential %s proof does not verify: %v", credential.ID, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return cli.Internal("credential %s proof has unexpected claim type", credential.ID)
	}
	if claims["jti"] != credential.ID {
		return cli.Validation("credential %s proof was issued for %v", credential.ID, claims["jti"])
	}
	if claims["sub"] != credential.SubjectID().String() {
		return cli.Validation("credential %s proof names a different subject", credential.ID)
	}
	return nil
}
