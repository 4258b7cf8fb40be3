// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"
)

func testKeyPair(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	return publicKey, privateKey
}

func TestFromPublicKeyDeterministic(t *testing.T) {
	publicKey, _ := testKeyPair(t)

	first := FromPublicKey(publicKey)
	second := FromPublicKey(publicKey)
	if first != second {
		t.Errorf("same key produced different DIDs: %s vs %s", first, second)
	}

	otherKey, _ := testKeyPair(t)
	if other := FromPublicKey(otherKey); other == first {
		t.Error("different keys produced the same DID")
	}
}

func TestDIDStringRoundTrip(t *testing.T) {
	publicKey, _ := testKeyPair(t)
	did := FromPublicKey(publicKey)

	raw := did.String()
	if !strings.HasPrefix(raw, "did:iota:") {
		t.Fatalf("String() = %q, want did:iota: prefix", raw)
	}

	parsed, err := ParseDID(raw)
	if err != nil {
		t.Fatalf("ParseDID(%q): %v", raw, err)
	}
	if parsed != did {
		t.Errorf("round trip mismatch: %s != %s", parsed, did)
	}
}

func TestParseDIDRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"did:iota",
		"did:iota:",
		"did:web:example.com",
		"not-a-did",
		"did:iota:0OIl", // 0, O, I, l are not base58.
	} {
		if _, err := ParseDID(raw); err == nil {
			t.Errorf("ParseDID(%q) should fail", raw)
		}
	}
}

func TestDIDTextMarshaling(t *testing.T) {
	publicKey, _ := testKeyPair(t)
	did := FromPublicKey(publicKey)

	text, err := did.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var decoded DID
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", text, err)
	}
	if decoded != did {
		t.Errorf("text round trip mismatch: %s != %s", decoded, did)
	}

	var zero DID
	if !zero.IsZero() {
		t.Error("zero DID should report IsZero")
	}
	if decoded.IsZero() {
		t.Error("decoded DID should not report IsZero")
	}
}
