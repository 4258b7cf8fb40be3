// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"context"
	"encoding/hex"
	"sync"
	"time"

	"github.com/chriamue/iota-identity-examples/lib/cli"
	"github.com/chriamue/iota-identity-examples/lib/codec"
)

var ledgerMessageDomainKey = domainKey{
	's', 's', 'i', '.', 'l', 'e', 'd', 'g', 'e', 'r', '.',
	'm', 'e', 's', 's', 'a', 'g', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Receipt is the ledger's acknowledgement of a published document.
type Receipt struct {
	// MessageID is the hex BLAKE3 hash of the published payload.
	// Deterministic: the same document bytes always yield the same ID.
	MessageID string

	// PublishedAt is when the ledger accepted the message.
	PublishedAt time.Time

	// ExplorerURL points at a web view of the published message.
	ExplorerURL string
}

// Ledger is the boundary to the distributed ledger that stores DID
// documents. Both operations may block on network round trips, so they
// take a context.
type Ledger interface {
	// Publish stores a signed document and returns a receipt. Unsigned
	// documents are rejected.
	Publish(ctx context.Context, document *Document) (Receipt, error)

	// Resolve returns the most recently published document for a DID.
	Resolve(ctx context.Context, did DID) (*Document, error)
}

// MemoryLedger is an in-process Ledger used by the demo dashboard. It
// stores the deterministic CBOR bytes of each published document, so
// Resolve exercises the same decode path a remote ledger would.
type MemoryLedger struct {
	mu       sync.Mutex
	messages map[string][]byte // DID string -> published payload
}

// NewMemoryLedger creates an empty in-process ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{messages: make(map[string][]byte)}
}

// Publish implements Ledger. The document must carry a valid proof;
// publishing an unsigned or tampered document fails.
func (ledger *MemoryLedger) Publish(ctx context.Context, document *Document) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, cli.Transient("publish aborted: %v", err)
	}
	if err := document.Verify(); err != nil {
		return Receipt{}, cli.Validation("refusing to publish %s: %v", document.ID, err)
	}

	payload, err := codec.Marshal(document)
	if err != nil {
		return Receipt{}, cli.Internal("encoding document %s: %v", document.ID, err)
	}

	digest := keyedHash(ledgerMessageDomainKey, payload)
	messageID := hex.EncodeToString(digest[:])

	ledger.mu.Lock()
	ledger.messages[document.ID.String()] = payload
	ledger.mu.Unlock()

	return Receipt{
		MessageID:   messageID,
		PublishedAt: time.Now().UTC(),
		ExplorerURL: "https://explorer.iota.org/mainnet/message/" + messageID,
	}, nil
}

// Resolve implements Ledger.
func (ledger *MemoryLedger) Resolve(ctx context.Context, did DID) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, cli.Transient("resolve aborted: %v", err)
	}

	ledger.mu.Lock()
	payload, exists := ledger.messages[did.String()]
	ledger.mu.Unlock()

	if !exists {
		return nil, cli.NotFound("no document published for %s", did)
	}

	var document Document
	if err := codec.Unmarshal(payload, &document); err != nil {
		return nil, cli.Internal("decoding document for %s: %v", did, err)
	}
	return &document, nil
}
