// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the error taxonomy and exit-code plumbing shared
// by the dashboard binary. Errors are categorized so main can decide
// between printing a message and passing through a prepared exit code,
// and so tests can assert on failure classes instead of message text.
package cli
