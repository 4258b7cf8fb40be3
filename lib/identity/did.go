// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"crypto/ed25519"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/zeebo/blake3"

	"github.com/chriamue/iota-identity-examples/lib/cli"
)

// Method is the DID method name used by this module.
const Method = "iota"

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation ensures the same input bytes produce different hashes in
// different contexts. The byte values are the ASCII encoding of the
// domain name, zero-padded to 32 bytes, so the keys are inspectable in
// hex dumps without sacrificing any cryptographic property.
type domainKey [32]byte

var didTagDomainKey = domainKey{
	's', 's', 'i', '.', 'i', 'd', 'e', 'n', 't', 'i', 't', 'y', '.',
	'd', 'i', 'd', '.', 't', 'a', 'g', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// keyedHash computes the BLAKE3 keyed hash of data under the given
// domain key.
func keyedHash(key domainKey, data []byte) [32]byte {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("identity: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var result [32]byte
	copy(result[:], hasher.Sum(nil))
	return result
}

// DID is a decentralized identifier: did:iota:<tag>, where the tag is
// the base58btc encoding of a keyed BLAKE3 hash of the identity's
// initial public key. The zero DID is invalid; construct via
// [FromPublicKey] or [ParseDID].
type DID struct {
	tag string
}

// FromPublicKey derives the DID for an Ed25519 public key.
func FromPublicKey(publicKey ed25519.PublicKey) DID {
	digest := keyedHash(didTagDomainKey, publicKey)
	return DID{tag: base58.Encode(digest[:])}
}

// ParseDID parses a did:iota:<tag> string. The tag must be non-empty
// valid base58.
func ParseDID(raw string) (DID, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] != "did" {
		return DID{}, cli.Validation("malformed DID %q: want did:%s:<tag>", raw, Method)
	}
	if parts[1] != Method {
		return DID{}, cli.Validation("unsupported DID method %q in %q", parts[1], raw)
	}
	if parts[2] == "" {
		return DID{}, cli.Validation("malformed DID %q: empty tag", raw)
	}
	if _, err := base58.Decode(parts[2]); err != nil {
		return DID{}, cli.Validation("malformed DID %q: tag is not base58: %v", raw, err)
	}
	return DID{tag: parts[2]}, nil
}

// MustParseDID parses a DID string and panics on error. For tests and
// compile-time-constant identifiers only.
func MustParseDID(raw string) DID {
	did, err := ParseDID(raw)
	if err != nil {
		panic(err)
	}
	return did
}

// String returns the full did:iota:<tag> form.
func (did DID) String() string {
	return "did:" + Method + ":" + did.tag
}

// Tag returns the method-specific identifier.
func (did DID) Tag() string {
	return did.tag
}

// IsZero reports whether the DID is the invalid zero value.
func (did DID) IsZero() bool {
	return did.tag == ""
}

// MarshalText implements encoding.TextMarshaler so DIDs serialize as
// plain strings in CBOR and JSON.
func (did DID) MarshalText() ([]byte, error) {
	return []byte(did.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (did *DID) UnmarshalText(text []byte) error {
	parsed, err := ParseDID(string(text))
	if err != nil {
		return err
	}
	*did = parsed
	return nil
}
