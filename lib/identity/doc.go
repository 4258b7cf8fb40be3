// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package identity implements the identity collaborator for the
// dashboard: DID derivation, DID documents with Ed25519 self-signing,
// and the ledger boundary for publishing and resolving documents.
//
// A DID is derived from the public key (BLAKE3 keyed hash, base58btc),
// so a document's identifier commits to its initial key material. The
// signing input for document proofs is the deterministic CBOR encoding
// from [codec], which makes verification stable across re-encoding;
// the document resolved back from the ledger verifies with the same
// bytes as the one that was published.
//
// The ledger is an interface: the demo runs against [MemoryLedger],
// an in-process stand-in for a distributed ledger. Real network
// publication is out of scope for the dashboard and lives behind the
// same interface.
package identity
