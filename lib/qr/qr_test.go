// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package qr

import (
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"
)

// decode optically reads the text back out of a glyph grid.
func decode(t *testing.T, grid *GlyphGrid) string {
	t.Helper()
	bitmap, err := gozxing.NewBinaryBitmapFromImage(grid.Image(8))
	if err != nil {
		t.Fatalf("NewBinaryBitmapFromImage: %v", err)
	}
	result, err := gozxingqr.NewQRCodeReader().Decode(bitmap, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return result.GetText()
}

func TestRoundTripDID(t *testing.T) {
	text := "did:iota:4YBzxZVFKyz3nCiAcGpgMYUVgEb1pVYyyvPFM8PiQhUq"
	grid, err := Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := decode(t, grid); got != text {
		t.Errorf("round trip = %q, want %q", got, text)
	}
}

func TestRoundTripCredentialText(t *testing.T) {
	text := `{"@context":["https://www.w3.org/2018/credentials/v1"],` +
		`"type":["VerifiableCredential","UniversityDegreeCredential"],` +
		`"credentialSubject":{"name":"Alice","GPA":"4.0"}}`
	grid, err := Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := decode(t, grid); got != text {
		t.Errorf("round trip = %q, want %q", got, text)
	}
}

func TestEncodeEmpty(t *testing.T) {
	if _, err := Encode(""); err == nil {
		t.Error("Encode should reject an empty payload")
	}
}

func TestEncodeOversized(t *testing.T) {
	// QR capacity tops out below 3KB of byte-mode data.
	if _, err := Encode(strings.Repeat("x", 8192)); err == nil {
		t.Error("Encode should fail beyond QR capacity")
	}
}

func TestRenderShape(t *testing.T) {
	grid, err := Encode("hello")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	rendered := grid.Render(false)
	lines := strings.Split(rendered, "\n")
	wantLines := (grid.Rows() + 1) / 2
	if len(lines) != wantLines {
		t.Errorf("rendered %d lines, want %d", len(lines), wantLines)
	}
	for index, line := range lines {
		if runeCount := len([]rune(line)); runeCount != grid.Cols() {
			t.Errorf("line %d has %d runes, want %d", index, runeCount, grid.Cols())
		}
		for _, r := range line {
			if r != '█' && r != '▀' && r != '▄' && r != ' ' {
				t.Fatalf("line %d contains unexpected rune %q", index, r)
			}
		}
	}
}

func TestRenderInversion(t *testing.T) {
	grid, err := Encode("hello")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	plain := grid.Render(false)
	inverted := grid.Render(true)
	if plain == inverted {
		t.Error("inverted rendering should differ from plain rendering")
	}

	// The quiet zone is all light modules: blank in plain rendering,
	// full blocks when inverted.
	if !strings.HasPrefix(plain, " ") {
		t.Error("plain rendering should start with a blank quiet zone")
	}
	if !strings.HasPrefix(inverted, "█") {
		t.Error("inverted rendering should start with a filled quiet zone")
	}
}
