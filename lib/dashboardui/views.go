// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package dashboardui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chriamue/iota-identity-examples/lib/issuance"
)

// renderHeader renders the tab bar as a single line in the btop style:
// tab labels embedded in a horizontal rule. The first character of each
// label is highlighted as the key that activates it; the active tab is
// bold.
//
// Example: ─── Home ─── Issue ─── Verify ──────────
func renderHeader(theme Theme, keys KeyMap, activeTab Tab, width int) string {
	separatorStyle := lipgloss.NewStyle().
		Foreground(theme.BorderColor)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ActiveTab)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText)
	mnemonicStyle := lipgloss.NewStyle().
		Underline(true).
		Foreground(theme.HighlightKey)

	sep := separatorStyle.Render("─")

	line := sep + sep + sep // Leading "───"
	cursor := 3

	for index, tab := range tabOrder {
		label := tab.Title()
		mnemonic, rest := label[:1], label[1:]

		line += " "
		cursor++

		if tab == activeTab {
			line += activeStyle.Underline(true).Render(mnemonic) + activeStyle.Render(rest)
		} else {
			line += mnemonicStyle.Render(mnemonic) + inactiveStyle.Render(rest)
		}
		cursor += lipgloss.Width(label)

		line += " "
		cursor++

		sepCount := 3
		if index == len(tabOrder)-1 {
			sepCount = 1
		}
		for range sepCount {
			line += sep
			cursor++
		}
	}

	// Fill the rest of the line with separator chars.
	for cursor < width {
		line += sep
		cursor++
	}
	return line
}

// renderFooter renders the bottom help bar with key hints.
func renderFooter(theme Theme, keys KeyMap, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.HelpText)

	hints := []string{
		keys.Home.Help().Key + " " + keys.Home.Help().Desc,
		keys.Issue.Help().Key + " " + keys.Issue.Help().Desc,
		keys.Verify.Help().Key + " " + keys.Verify.Help().Desc,
		keys.Quit.Help().Key + " " + keys.Quit.Help().Desc,
	}
	help := " " + strings.Join(hints, "  ")

	return style.Width(width).MaxWidth(width).Render(help)
}

// renderPanel renders the active panel into the content area between
// header and footer: a bordered, titled box filling the given size.
func renderPanel(theme Theme, activeTab Tab, result *issuance.Result, width, height int) string {
	// Interior dimensions inside the one-character border.
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var body string
	switch activeTab {
	case TabIssue:
		body = renderIssue(theme, result, innerWidth, innerHeight)
	case TabVerify:
		body = renderVerify(theme, innerWidth, innerHeight)
	default:
		body = renderHome(theme, innerWidth, innerHeight)
	}

	// Truncate overlong lines so an oversized QR grid cannot break the
	// frame, then border the result.
	body = lipgloss.NewStyle().MaxWidth(innerWidth).Render(body)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.BorderColor).
		Width(innerWidth).
		Height(innerHeight)

	panel := borderStyle.Render(body)

	// Splice the title into the top border line.
	return overlayTitle(theme, panel, activeTab.Title())
}

// overlayTitle replaces the start of the panel's top border with the
// panel title, keeping the line width unchanged.
func overlayTitle(theme Theme, panel, title string) string {
	lines := strings.SplitN(panel, "\n", 2)
	if len(lines) < 2 {
		return panel
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	decorated := "┌─ " + title + " "
	topWidth := lipgloss.Width(lines[0])
	remaining := topWidth - lipgloss.Width(decorated) - 1
	if remaining < 0 {
		return panel
	}

	borderStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	top := borderStyle.Render("┌─ ") + titleStyle.Render(title) + borderStyle.Render(" "+strings.Repeat("─", remaining)+"┐")
	return top + "\n" + lines[1]
}

// renderHome renders the static welcome panel.
func renderHome(theme Theme, width, height int) string {
	accent := lipgloss.NewStyle().Foreground(theme.AccentText)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	body := strings.Join([]string{
		"",
		"Welcome",
		"",
		"to",
		"",
		accent.Render("SSI @ IOTA"),
		"",
		faint.Render("Press q to quit."),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderIssue renders the issued credential: both QR artifacts, the
// attribution line, and the credential text wrapped to the panel
// width. Everything shown here was precomputed before the loop
// started; this function only lays it out.
func renderIssue(theme Theme, result *issuance.Result, width, height int) string {
	if result == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			"No credential issued.")
	}

	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	accent := lipgloss.NewStyle().Foreground(theme.AccentText)

	attribution := accent.Render(fmt.Sprintf("issued by %s", result.IssuerDID))

	didBlock := faint.Render("issuer DID") + "\n" + result.DIDGrid.Render(true)
	credentialBlock := faint.Render("credential") + "\n" + result.CredentialGrid.Render(true)

	// Side by side when the panel is wide enough, stacked otherwise.
	var grids string
	if lipgloss.Width(didBlock)+lipgloss.Width(credentialBlock)+4 <= width {
		grids = lipgloss.JoinHorizontal(lipgloss.Top, didBlock, "    ", credentialBlock)
	} else {
		grids = lipgloss.JoinVertical(lipgloss.Left, didBlock, "", credentialBlock)
	}

	var text strings.Builder
	for _, line := range wrapText(result.CredentialText, width) {
		text.WriteString("\n")
		text.WriteString(faint.Render(line))
	}

	body := attribution + "\n\n" + grids + "\n" + text.String()
	return clampHeight(body, height)
}

// renderVerify renders the verification placeholder panel.
func renderVerify(theme Theme, width, height int) string {
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	body := strings.Join([]string{
		"Verify",
		"",
		faint.Render("Credential verification is not wired into this demo."),
		"",
		faint.Render("Press q to quit."),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// clampHeight truncates body to at most height lines so an oversized
// panel body cannot push the footer off screen.
func clampHeight(body string, height int) string {
	lines := strings.Split(body, "\n")
	if len(lines) <= height {
		return body
	}
	return strings.Join(lines[:height], "\n")
}
