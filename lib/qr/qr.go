// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package qr implements the QR collaborator: encoding text into a
// scannable glyph grid for terminal display. The grid renders two
// module rows per text row using half-block characters, the densest
// representation a character cell terminal offers. Rendering supports
// inversion so codes stay scannable on dark terminal backgrounds
// (scanners expect dark modules on light ground; a dark terminal
// needs the colors swapped to present that contrast).
package qr

import (
	"image"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/chriamue/iota-identity-examples/lib/cli"
)

// Half-block glyphs: each rendered row covers two module rows.
const (
	glyphFull    = '█' // both modules set
	glyphUpper   = '▀' // top module set
	glyphLower   = '▄' // bottom module set
	glyphNeither = ' '
)

// GlyphGrid is an encoded QR symbol: a square matrix of light/dark
// modules including the quiet zone. Immutable after Encode.
type GlyphGrid struct {
	modules [][]bool
	code    *qrcode.QRCode
}

// Encode builds the QR symbol for text at medium error correction.
// Fails when the payload exceeds QR capacity.
func Encode(text string) (*GlyphGrid, error) {
	if text == "" {
		return nil, cli.Validation("cannot encode an empty payload")
	}
	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, cli.Validation("encoding %d bytes as QR: %v", len(text), err)
	}
	return &GlyphGrid{modules: code.Bitmap(), code: code}, nil
}

// Rows returns the module row count (quiet zone included).
func (grid *GlyphGrid) Rows() int {
	return len(grid.modules)
}

// Cols returns the module column count (quiet zone included).
func (grid *GlyphGrid) Cols() int {
	if len(grid.modules) == 0 {
		return 0
	}
	return len(grid.modules[0])
}

// module reports whether the module at (row, col) is dark. Positions
// outside the symbol are light, so an odd final row renders against
// the quiet zone.
func (grid *GlyphGrid) module(row, col int) bool {
	if row < 0 || row >= len(grid.modules) {
		return false
	}
	if col < 0 || col >= len(grid.modules[row]) {
		return false
	}
	return grid.modules[row][col]
}

// Render returns the half-block text form of the symbol, two module
// rows per line. With inverted true, light modules are drawn as blocks
// instead of dark ones.
func (grid *GlyphGrid) Render(inverted bool) string {
	var output strings.Builder
	for row := 0; row < grid.Rows(); row += 2 {
		for col := 0; col < grid.Cols(); col++ {
			top := grid.module(row, col) != inverted
			bottom := grid.module(row+1, col) != inverted
			switch {
			case top && bottom:
				output.WriteRune(glyphFull)
			case top:
				output.WriteRune(glyphUpper)
			case bottom:
				output.WriteRune(glyphLower)
			default:
				output.WriteRune(glyphNeither)
			}
		}
		if row+2 < grid.Rows() {
			output.WriteRune('\n')
		}
	}
	return output.String()
}

// Image returns the symbol as an image with |scale| pixels per module.
// Used by optical decode tests; the dashboard itself only renders text.
func (grid *GlyphGrid) Image(scale int) image.Image {
	if scale > 0 {
		scale = -scale
	}
	return grid.code.Image(scale)
}
