// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package dashboardui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range lines {
		if width := ansi.StringWidth(line); width > 15 {
			t.Errorf("line %q exceeds width 15 (%d)", line, width)
		}
	}
	if rejoined := strings.Join(lines, " "); rejoined != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("wrapping lost or reordered words: %q", rejoined)
	}
}

func TestWrapTextPreservesNewlines(t *testing.T) {
	lines := wrapText("first\nsecond", 40)
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Errorf("expected [first second], got %q", lines)
	}
}

func TestWrapTextHardBreaksLongWords(t *testing.T) {
	word := strings.Repeat("a", 25)
	lines := wrapText(word, 10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if rejoined := strings.Join(lines, ""); rejoined != word {
		t.Errorf("hard break lost characters: %q", rejoined)
	}
	for _, line := range lines {
		if ansi.StringWidth(line) > 10 {
			t.Errorf("line %q exceeds width 10", line)
		}
	}
}

func TestWrapTextEmpty(t *testing.T) {
	lines := wrapText("", 10)
	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("empty input should wrap to one empty line, got %q", lines)
	}
}
