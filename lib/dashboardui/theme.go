// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package dashboardui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the dashboard. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color
	AccentText lipgloss.Color

	// Tab bar.
	ActiveTab    lipgloss.Color
	HighlightKey lipgloss.Color // The mnemonic first character of each label.

	// UI chrome.
	BorderColor lipgloss.Color
	HelpText    lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),
	AccentText: lipgloss.Color("75"), // blue

	ActiveTab:    lipgloss.Color("220"), // amber
	HighlightKey: lipgloss.Color("220"),

	BorderColor: lipgloss.Color("240"),
	HelpText:    lipgloss.Color("241"),
}
