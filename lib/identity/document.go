// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"bytes"
	"crypto/ed25519"
	"time"

	"github.com/mr-tron/base58"

	"github.com/chriamue/iota-identity-examples/lib/cli"
	"github.com/chriamue/iota-identity-examples/lib/codec"
)

// Verification method and proof type identifiers. These follow the
// published suite names so resolved documents are recognizable to
// standard tooling, even though the demo ledger is in-process.
const (
	verificationMethodType = "Ed25519VerificationKey2018"
	proofType              = "JcsEd25519Signature2020"

	// signingMethodFragment names the document's initial verification
	// method. The full method ID is <did>#sign-0.
	signingMethodFragment = "#sign-0"

	// multibaseBase58Prefix is the multibase prefix for base58btc.
	multibaseBase58Prefix = "z"
)

// multicodecEd25519Pub is the multicodec varint prefix for an Ed25519
// public key (0xed 0x01), prepended before multibase encoding.
var multicodecEd25519Pub = []byte{0xed, 0x01}

// SigningMethodID returns the ID of the DID's initial verification
// method (<did>#sign-0), the key that signs documents and credentials.
func (did DID) SigningMethodID() string {
	return did.String() + signingMethodFragment
}

// VerificationMethod describes a public key bound to a DID document.
type VerificationMethod struct {
	ID                 string `cbor:"id" json:"id"`
	Type               string `cbor:"type" json:"type"`
	Controller         DID    `cbor:"controller" json:"controller"`
	PublicKeyMultibase string `cbor:"publicKeyMultibase" json:"publicKeyMultibase"`
}

// Proof is the self-signature attached to a published document. The
// signature covers the deterministic CBOR encoding of the document
// with the proof field removed.
type Proof struct {
	Type               string `cbor:"type" json:"type"`
	VerificationMethod string `cbor:"verificationMethod" json:"verificationMethod"`
	Created            string `cbor:"created" json:"created"`
	SignatureValue     string `cbor:"signatureValue" json:"signatureValue"`
}

// Document is a DID document: the public description of an identity
// that gets published to the ledger. Immutable by convention once
// signed; every mutation invalidates the proof.
type Document struct {
	ID                 DID                  `cbor:"id" json:"id"`
	VerificationMethod []VerificationMethod `cbor:"verificationMethod" json:"verificationMethod"`
	Authentication     []string             `cbor:"authentication" json:"authentication"`
	Created            string               `cbor:"created" json:"created"`
	Updated            string               `cbor:"updated" json:"updated"`
	Proof              *Proof               `cbor:"proof,omitempty" json:"proof,omitempty"`
}

// NewDocument builds an unsigned DID document for the given public
// key. The DID is derived from the key, so the document's identifier
// commits to its initial key material.
func NewDocument(publicKey ed25519.PublicKey, now time.Time) *Document {
	did := FromPublicKey(publicKey)
	timestamp := now.UTC().Format(time.RFC3339)
	methodID := did.SigningMethodID()

	return &Document{
		ID: did,
		VerificationMethod: []VerificationMethod{{
			ID:                 methodID,
			Type:               verificationMethodType,
			Controller:         did,
			PublicKeyMultibase: encodeMultibaseKey(publicKey),
		}},
		Authentication: []string{methodID},
		Created:        timestamp,
		Updated:        timestamp,
	}
}

// encodeMultibaseKey encodes an Ed25519 public key as a multibase
// base58btc string with the multicodec ed25519-pub prefix.
func encodeMultibaseKey(publicKey ed25519.PublicKey) string {
	prefixed := append(append([]byte{}, multicodecEd25519Pub...), publicKey...)
	return multibaseBase58Prefix + base58.Encode(prefixed)
}

// decodeMultibaseKey reverses encodeMultibaseKey.
func decodeMultibaseKey(encoded string) (ed25519.PublicKey, error) {
	if len(encoded) < 2 || encoded[:1] != multibaseBase58Prefix {
		return nil, cli.Validation("public key %q is not multibase base58btc", encoded)
	}
	raw, err := base58.Decode(encoded[1:])
	if err != nil {
		return nil, cli.Validation("public key %q is not base58: %v", encoded, err)
	}
	if !bytes.HasPrefix(raw, multicodecEd25519Pub) {
		return nil, cli.Validation("public key %q lacks the ed25519-pub multicodec prefix", encoded)
	}
	key := raw[len(multicodecEd25519Pub):]
	if len(key) != ed25519.PublicKeySize {
		return nil, cli.Validation("public key has %d bytes, want %d", len(key), ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(key), nil
}

// PublicKey returns the document's signing public key, decoded from
// the first verification method.
func (document *Document) PublicKey() (ed25519.PublicKey, error) {
	if len(document.VerificationMethod) == 0 {
		return nil, cli.Validation("document %s has no verification methods", document.ID)
	}
	return decodeMultibaseKey(document.VerificationMethod[0].PublicKeyMultibase)
}

// signingInput returns the canonical byte form covered by the proof:
// the deterministic CBOR encoding of the document with Proof removed.
func (document *Document) signingInput() ([]byte, error) {
	unsigned := *document
	unsigned.Proof = nil
	return codec.Marshal(&unsigned)
}

// Sign attaches a self-signature over the document's canonical byte
// form. Any existing proof is replaced.
func (document *Document) Sign(privateKey ed25519.PrivateKey, now time.Time) error {
	if len(document.VerificationMethod) == 0 {
		return cli.Validation("cannot sign document %s: no verification methods", document.ID)
	}

	document.Proof = nil
	input, err := document.signingInput()
	if err != nil {
		return cli.Internal("encoding document %s for signing: %v", document.ID, err)
	}

	signature := ed25519.Sign(privateKey, input)
	document.Proof = &Proof{
		Type:               proofType,
		VerificationMethod: document.VerificationMethod[0].ID,
		Created:            now.UTC().Format(time.RFC3339),
		SignatureValue:     base58.Encode(signature),
	}
	return nil
}

// Verify checks the document's self-signature against its own
// verification method. Returns nil when the proof is valid.
func (document *Document) Verify() error {
	if document.Proof == nil {
		return cli.Validation("document %s has no proof", document.ID)
	}

	publicKey, err := document.PublicKey()
	if err != nil {
		return err
	}

	signature, err := base58.Decode(document.Proof.SignatureValue)
	if err != nil {
		return cli.Validation("document %s proof is not base58: %v", document.ID, err)
	}

	input, err := document.signingInput()
	if err != nil {
		return cli.Internal("encoding document %s for verification: %v", document.ID, err)
	}

	if !ed25519.Verify(publicKey, input, signature) {
		return cli.Validation("document %s proof does not verify", document.ID)
	}
	return nil
}
