// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Mode != ModeFresh {
		t.Errorf("default mode = %q", cfg.Mode)
	}
	if cfg.TickInterval() != 200*time.Millisecond {
		t.Errorf("default tick = %v", cfg.TickInterval())
	}
	if cfg.Credential.Claims["name"] != "Alice" {
		t.Errorf("default claims = %+v", cfg.Credential.Claims)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := strings.Join([]string{
		"mode: existing",
		"tick: 100ms",
		"credential:",
		"  type: MembershipCredential",
		"  claims:",
		"    member: \"Bob\"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.Mode != ModeExisting {
		t.Errorf("mode = %q, want existing", cfg.Mode)
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("tick = %v, want 100ms", cfg.TickInterval())
	}
	if cfg.Credential.Type != "MembershipCredential" {
		t.Errorf("type = %q", cfg.Credential.Type)
	}
	if cfg.Credential.Claims["member"] != "Bob" {
		t.Errorf("claims = %+v", cfg.Credential.Claims)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile should fail on a missing file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad mode", func(c *Config) { c.Mode = "sideways" }},
		{"bad tick", func(c *Config) { c.Tick = "fast" }},
		{"zero tick", func(c *Config) { c.Tick = "0s" }},
		{"negative tick", func(c *Config) { c.Tick = "-1s" }},
		{"missing type", func(c *Config) { c.Credential.Type = "" }},
		{"no claims", func(c *Config) { c.Credential.Claims = nil }},
		{"reserved id claim", func(c *Config) { c.Credential.Claims["id"] = "nope" }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate should fail", tc.name)
		}
	}
}
