// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the dashboard.
//
// Configuration is loaded from a single YAML file specified by:
//   - SSI_DASHBOARD_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery; without a file the
// built-in defaults apply. The file is the single source of truth;
// environment variables do not override individual values.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Mode selects how the issuance workflow obtains the issuing identity.
type Mode string

const (
	// ModeFresh creates issuer and subject identities fresh each run.
	ModeFresh Mode = "fresh"

	// ModeExisting creates the issuer, then resolves it back from the
	// ledger and issues from the resolved document. Exercises the
	// resolution path a long-lived deployment would use.
	ModeExisting Mode = "existing"
)

// CredentialConfig describes the credential the dashboard issues.
type CredentialConfig struct {
	// Type is the credential type appended after VerifiableCredential.
	Type string `yaml:"type"`

	// Claims are the assertions made about the subject. The "id" claim
	// is reserved and filled with the subject DID at issuance.
	Claims map[string]any `yaml:"claims"`
}

// Config is the master configuration for the dashboard.
type Config struct {
	// Mode selects fresh or existing-identity issuance.
	Mode Mode `yaml:"mode"`

	// Tick is the forced-redraw interval, as a Go duration string.
	// Default: 200ms.
	Tick string `yaml:"tick"`

	// Credential describes what gets issued.
	Credential CredentialConfig `yaml:"credential"`
}

// Default returns the built-in configuration: fresh identities, a
// 200ms tick, and the example degree credential.
func Default() *Config {
	return &Config{
		Mode: ModeFresh,
		Tick: "200ms",
		Credential: CredentialConfig{
			Type: "UniversityDegreeCredential",
			Claims: map[string]any{
				"name": "Alice",
				"degree": map[string]any{
					"type": "BachelorDegree",
					"name": "Bachelor of Science and Arts",
				},
				"GPA": "4.0",
			},
		},
	}
}

// Load loads configuration from the SSI_DASHBOARD_CONFIG environment
// variable, falling back to defaults when it is unset.
func Load() (*Config, error) {
	path := os.Getenv("SSI_DASHBOARD_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// TickInterval returns the parsed tick duration. Call Validate first;
// on an unparseable value this falls back to the default interval.
func (c *Config) TickInterval() time.Duration {
	interval, err := time.ParseDuration(c.Tick)
	if err != nil || interval <= 0 {
		return 200 * time.Millisecond
	}
	return interval
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Mode != ModeFresh && c.Mode != ModeExisting {
		errs = append(errs, fmt.Errorf("invalid mode %q: want %q or %q", c.Mode, ModeFresh, ModeExisting))
	}

	if interval, err := time.ParseDuration(c.Tick); err != nil {
		errs = append(errs, fmt.Errorf("invalid tick %q: %v", c.Tick, err))
	} else if interval <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %q", c.Tick))
	}

	if c.Credential.Type == "" {
		errs = append(errs, fmt.Errorf("credential.type is required"))
	}
	if len(c.Credential.Claims) == 0 {
		errs = append(errs, fmt.Errorf("credential.claims must have at least one entry"))
	}
	if _, reserved := c.Credential.Claims["id"]; reserved {
		errs = append(errs, fmt.Errorf("credential.claims.id is reserved for the subject DID"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
