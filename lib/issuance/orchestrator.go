// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package issuance runs the one-shot setup workflow that precedes the
// dashboard: create the issuer and subject identities, build and sign
// the credential, and encode the QR artifacts. The dashboard render
// loop only ever sees the immutable [Result]; no identity or ledger
// work happens once the terminal UI is running.
package issuance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chriamue/iota-identity-examples/lib/config"
	"github.com/chriamue/iota-identity-examples/lib/credential"
	"github.com/chriamue/iota-identity-examples/lib/identity"
	"github.com/chriamue/iota-identity-examples/lib/qr"
)

// Result is the immutable output of one orchestrator run. All strings
// and grids are precomputed so rendering never blocks on anything but
// the terminal.
type Result struct {
	// Issuer and Subject are the two created identities. The issuer's
	// document may be the ledger-resolved copy in existing mode.
	Issuer  *identity.Record
	Subject *identity.Record

	// Credential is the signed credential about Subject, attributed
	// to Issuer.
	Credential *credential.Credential

	// IssuerDID and CredentialText are the cached display strings.
	IssuerDID      string
	CredentialText string

	// DIDGrid and CredentialGrid are the QR artifacts for the two
	// display strings.
	DIDGrid        *qr.GlyphGrid
	CredentialGrid *qr.GlyphGrid
}

// Orchestrator executes the setup workflow. Construct with New; run
// once with Run.
type Orchestrator struct {
	service *identity.Service
	cfg     *config.Config
	logger  *slog.Logger
}

// New creates an Orchestrator. A nil logger defaults to slog.Default.
func New(service *identity.Service, cfg *config.Config, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{service: service, cfg: cfg, logger: logger}
}

// Run executes the sequential setup steps. Any step's failure aborts
// the run; the dashboard is never entered on error.
func (orchestrator *Orchestrator) Run(ctx context.Context) (*Result, error) {
	issuer, err := orchestrator.service.CreateIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating issuer identity: %w", err)
	}

	if orchestrator.cfg.Mode == config.ModeExisting {
		// Issue from the ledger's copy of the document rather than
		// the local one, the way a run against a previously published
		// identity would.
		resolved, err := orchestrator.service.ResolveIdentity(ctx, issuer.DID)
		if err != nil {
			return nil, fmt.Errorf("resolving issuer identity: %w", err)
		}
		issuer = &identity.Record{
			DID:        resolved.ID,
			Document:   resolved,
			PrivateKey: issuer.PrivateKey,
			Receipt:    issuer.Receipt,
		}
	}

	subject, err := orchestrator.service.CreateIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating subject identity: %w", err)
	}

	builder := credential.NewBuilder(time.Now()).
		Type(orchestrator.cfg.Credential.Type).
		Issuer(issuer.DID).
		Subject(subject.DID)
	for name, value := range orchestrator.cfg.Credential.Claims {
		builder.Claim(name, value)
	}

	built, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building credential: %w", err)
	}
	if err := credential.Sign(built, issuer.PrivateKey, time.Now()); err != nil {
		return nil, fmt.Errorf("signing credential: %w", err)
	}
	orchestrator.logger.Info("credential issued",
		"id", built.ID,
		"issuer", issuer.DID.String(),
		"subject", subject.DID.String(),
	)

	credentialText, err := built.Serialize()
	if err != nil {
		return nil, fmt.Errorf("serializing credential: %w", err)
	}

	issuerDID := issuer.DID.String()
	didGrid, err := qr.Encode(issuerDID)
	if err != nil {
		return nil, fmt.Errorf("encoding issuer DID as QR: %w", err)
	}
	credentialGrid, err := qr.Encode(credentialText)
	if err != nil {
		return nil, fmt.Errorf("encoding credential as QR: %w", err)
	}

	return &Result{
		Issuer:         issuer,
		Subject:        subject,
		Credential:     built,
		IssuerDID:      issuerDID,
		CredentialText: credentialText,
		DIDGrid:        didGrid,
		CredentialGrid: credentialGrid,
	}, nil
}
