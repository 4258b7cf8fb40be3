// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// ssi-dashboard is an interactive terminal dashboard demonstrating a
// decentralized-identity workflow: it creates an issuer and a subject
// identity, publishes their DID documents to an in-memory ledger,
// issues a signed verifiable credential, and presents the results in
// a menu-driven TUI with QR renderings of the DID and the credential.
//
// All identity and ledger work happens before the UI starts; the event
// loop only navigates precomputed results, so the dashboard stays
// responsive regardless of terminal size or input rate.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/chriamue/iota-identity-examples/lib/cli"
	"github.com/chriamue/iota-identity-examples/lib/config"
	"github.com/chriamue/iota-identity-examples/lib/dashboardui"
	"github.com/chriamue/iota-identity-examples/lib/identity"
	"github.com/chriamue/iota-identity-examples/lib/issuance"
	"github.com/chriamue/iota-identity-examples/lib/version"
)

// issuanceTimeout bounds the pre-UI setup work. The in-memory ledger
// cannot block, but a future network-backed ledger can, and the UI
// should never hang on startup.
const issuanceTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var modeFlag string
	var tickFlag string
	var logOutput string

	flagSet := pflag.NewFlagSet("ssi-dashboard", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: SSI_DASHBOARD_CONFIG or built-in defaults)")
	flagSet.StringVar(&modeFlag, "mode", "", "issuance mode: fresh or existing (overrides config)")
	flagSet.StringVar(&tickFlag, "tick", "", "redraw interval as a Go duration, e.g. 200ms (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (default: text on stderr)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("ssi-dashboard")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cli.Validation("stdout is not a terminal; the dashboard needs an interactive terminal")
	}

	cfg, err := loadConfig(configPath, modeFlag, tickFlag)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger(logOutput)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), issuanceTimeout)
	defer cancel()

	ledger := identity.NewMemoryLedger()
	service := identity.NewService(ledger, logger)
	orchestrator := issuance.New(service, cfg, logger)
	result, err := orchestrator.Run(ctx)
	if err != nil {
		return err
	}

	model := dashboardui.NewModel(result, cfg.TickInterval())
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// loadConfig loads the configuration file and applies flag overrides.
func loadConfig(configPath, modeFlag, tickFlag string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("loading config: %w", err)
	}

	if modeFlag != "" {
		cfg.Mode = config.Mode(modeFlag)
	}
	if tickFlag != "" {
		cfg.Tick = tickFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Without --log-output, records
// go to stderr as text at warn level so they do not fight the alt
// screen during normal operation. With --log-output, full debug
// records go to the file as JSONL.
func newLogger(logOutput string) (*slog.Logger, func(), error) {
	if logOutput == "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(handler), func() {}, nil
	}

	file, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, cli.Validation("cannot open log file %s: %w", logOutput, err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `SSI dashboard: interactive demo of a decentralized-identity workflow.

On startup the dashboard creates two identities (issuer and subject),
publishes their DID documents to an in-memory ledger, and issues a
signed verifiable credential. The TUI then lets you browse the
results: h for home, i for the issued credential with QR renderings,
v for the verification panel, q to quit.

Usage:
  ssi-dashboard [flags]

Examples:
  # Run with built-in defaults
  ssi-dashboard

  # Run with a config file
  ssi-dashboard --config dashboard.yaml

  # Exercise the ledger resolution path
  ssi-dashboard --mode existing

  # Capture debug logs for post-mortem inspection
  ssi-dashboard --log-output /tmp/ssi-dashboard.jsonl

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
