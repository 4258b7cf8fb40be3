// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package credential implements the credential collaborator: building
// W3C-shaped verifiable credentials, signing them as VC-JWTs with the
// issuer's Ed25519 key, and verifying a signed credential against the
// issuer's resolved DID document.
//
// A credential asserts claims about a subject, attributed to an
// issuer. The builder enforces the structural invariants (issuer,
// subject, type, at least one claim); the proof carries a compact
// EdDSA JWS produced by golang-jwt.
package credential
