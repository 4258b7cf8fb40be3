// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package dashboardui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the dashboard. Keys outside the
// map are ignored by the update loop.
type KeyMap struct {
	Home   key.Binding
	Issue  key.Binding
	Verify key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set: one mnemonic letter
// per panel, matching the highlighted first character in the tab bar.
var DefaultKeyMap = KeyMap{
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
	Issue: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "issue"),
	),
	Verify: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "verify"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
