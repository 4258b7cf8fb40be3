// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/chriamue/iota-identity-examples/lib/cli"
	"github.com/chriamue/iota-identity-examples/lib/identity"
)

// Standard context and base type for verifiable credentials.
const (
	ContextW3C = "https://www.w3.org/2018/credentials/v1"
	TypeBase   = "VerifiableCredential"
)

// Proof carries the credential's signature: a compact EdDSA JWS over
// the credential claims, plus the verification method that signed it.
type Proof struct {
	Type               string `json:"type"`
	Created            string `json:"created"`
	VerificationMethod string `json:"verificationMethod"`
	JWS                string `json:"jws"`
}

// Credential is a W3C-shaped verifiable credential. Immutable once
// signed; Serialize gives the canonical display/QR text.
type Credential struct {
	Context           []string       `json:"@context"`
	ID                string         `json:"id"`
	Type              []string       `json:"type"`
	Issuer            identity.DID   `json:"issuer"`
	IssuanceDate      string         `json:"issuanceDate"`
	CredentialSubject map[string]any `json:"credentialSubject"`
	Proof             *Proof         `json:"proof,omitempty"`
}

// SubjectID returns the subject DID recorded in the credential's
// claims, or the zero DID if absent or malformed.
func (credential *Credential) SubjectID() identity.DID {
	raw, ok := credential.CredentialSubject["id"].(string)
	if !ok {
		return identity.DID{}
	}
	did, err := identity.ParseDID(raw)
	if err != nil {
		return identity.DID{}
	}
	return did
}

// Serialize returns the indented JSON text of the credential. This is
// the "credential text" the dashboard displays and QR-encodes.
func (credential *Credential) Serialize() (string, error) {
	encoded, err := json.MarshalIndent(credential, "", "  ")
	if err != nil {
		return "", cli.Internal("serializing credential %s: %v", credential.ID, err)
	}
	return string(encoded), nil
}

// Builder assembles a credential step by step. Zero value is not
// usable; construct with NewBuilder.
type Builder struct {
	credentialType string
	issuer         identity.DID
	subject        identity.DID
	claims         map[string]any
	now            time.Time
}

// NewBuilder creates a Builder stamped with the given issuance time.
func NewBuilder(now time.Time) *Builder {
	return &Builder{claims: make(map[string]any), now: now}
}

// Type sets the credential type appended after VerifiableCredential.
func (builder *Builder) Type(credentialType string) *Builder {
	builder.credentialType = credentialType
	return builder
}

// Issuer sets the issuing identity.
func (builder *Builder) Issuer(issuer identity.DID) *Builder {
	builder.issuer = issuer
	return builder
}

// Subject sets the identity the claims are about.
func (builder *Builder) Subject(subject identity.DID) *Builder {
	builder.subject = subject
	return builder
}

// Claim adds one claim about the subject. The "id" claim is reserved
// for the subject DID and set by Build.
func (builder *Builder) Claim(name string, value any) *Builder {
	builder.claims[name] = value
	return builder
}

// Build validates the assembled state and returns an unsigned
// credential with a fresh urn:uuid identifier.
func (builder *Builder) Build() (*Credential, error) {
	if builder.issuer.IsZero() {
		return nil, cli.Validation("credential needs an issuer")
	}
	if builder.subject.IsZero() {
		return nil, cli.Validation("credential needs a subject")
	}
	if builder.credentialType == "" {
		return nil, cli.Validation("credential needs a type")
	}
	if len(builder.claims) == 0 {
		return nil, cli.Validation("credential needs at least one claim")
	}

	subject := make(map[string]any, len(builder.claims)+1)
	for name, value := range builder.claims {
		subject[name] = value
	}
	subject["id"] = builder.subject.String()

	return &Credential{
		Context:           []string{ContextW3C},
		ID:                "urn:uuid:" + uuid.NewString(),
		Type:              []string{TypeBase, builder.credentialType},
		Issuer:            builder.issuer,
		IssuanceDate:      builder.now.UTC().Format(time.RFC3339),
		CredentialSubject: subject,
	}, nil
}
