// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package dashboardui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// wrapText greedily wraps text to the given display width. Existing
// newlines are respected; words longer than the width are hard-broken.
// Widths are measured with ansi.StringWidth so wide runes count
// correctly.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(paragraph string, width int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current string
	for _, word := range words {
		for ansi.StringWidth(word) > width {
			// Hard-break an oversized word at the width boundary.
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			head, tail := splitAtWidth(word, width)
			lines = append(lines, head)
			word = tail
		}

		switch {
		case current == "":
			current = word
		case ansi.StringWidth(current)+1+ansi.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitAtWidth splits word at the largest rune boundary whose prefix
// display width does not exceed width. The prefix is never empty, so
// callers always make progress.
func splitAtWidth(word string, width int) (head, tail string) {
	taken := 0
	for index, r := range word {
		runeWidth := ansi.StringWidth(string(r))
		if index > 0 && taken+runeWidth > width {
			return word[:index], word[index:]
		}
		taken += runeWidth
	}
	return word, ""
}
