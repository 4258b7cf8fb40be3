// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides deterministic CBOR encoding for ledger
// payloads and canonical signing input. All DID documents published to
// (or resolved from) the ledger pass through this package, as does the
// byte form of a document that gets signed.
package codec
