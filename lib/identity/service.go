// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/chriamue/iota-identity-examples/lib/cli"
)

// Record is one created identity: the DID, the published document, the
// private signing key, and the publish receipt. Immutable after
// creation; the service never hands out a record it retains a
// reference to, and re-running creation never touches earlier records.
type Record struct {
	DID        DID
	Document   *Document
	PrivateKey ed25519.PrivateKey
	Receipt    Receipt
}

// Service implements the create/resolve operations of the identity
// collaborator against a Ledger.
type Service struct {
	ledger Ledger
	logger *slog.Logger
}

// NewService creates a Service. A nil logger defaults to slog.Default.
func NewService(ledger Ledger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ledger: ledger, logger: logger}
}

// CreateIdentity generates a key pair, builds and self-signs a DID
// document, publishes it to the ledger, and awaits the receipt. Any
// step's failure aborts the whole operation.
func (service *Service) CreateIdentity(ctx context.Context) (*Record, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, cli.Internal("generating key pair: %v", err)
	}

	now := time.Now()
	document := NewDocument(publicKey, now)
	if err := document.Sign(privateKey, now); err != nil {
		return nil, err
	}

	receipt, err := service.ledger.Publish(ctx, document)
	if err != nil {
		return nil, err
	}

	service.logger.Info("identity created",
		"did", document.ID.String(),
		"message_id", receipt.MessageID,
	)

	return &Record{
		DID:        document.ID,
		Document:   document,
		PrivateKey: privateKey,
		Receipt:    receipt,
	}, nil
}

// ResolveIdentity fetches the published document for a DID from the
// ledger and checks its proof before returning it.
func (service *Service) ResolveIdentity(ctx context.Context, did DID) (*Document, error) {
	document, err := service.ledger.Resolve(ctx, did)
	if err != nil {
		return nil, err
	}
	if err := document.Verify(); err != nil {
		return nil, cli.Internal("resolved document for %s fails verification: %v", did, err)
	}

	service.logger.Info("identity resolved", "did", did.String())
	return document, nil
}
