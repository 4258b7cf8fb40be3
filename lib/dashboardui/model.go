// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package dashboardui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chriamue/iota-identity-examples/lib/issuance"
)

// Tab identifies which panel is active.
type Tab int

const (
	// TabHome shows the welcome panel.
	TabHome Tab = iota
	// TabIssue shows the issued credential and its QR artifacts.
	TabIssue
	// TabVerify shows the verification placeholder.
	TabVerify
)

// tabOrder fixes the left-to-right layout of the tab bar. The mapping
// is explicit so reordering the Tab constants cannot silently reorder
// the UI.
var tabOrder = []Tab{TabHome, TabIssue, TabVerify}

// Title returns the tab's label as shown in the tab bar.
func (tab Tab) Title() string {
	switch tab {
	case TabHome:
		return "Home"
	case TabIssue:
		return "Issue"
	case TabVerify:
		return "Verify"
	default:
		return "Unknown"
	}
}

// DefaultTickInterval is the forced-redraw interval when the caller
// does not configure one.
const DefaultTickInterval = 200 * time.Millisecond

// tickMsg drives the periodic redraw. Every tick schedules the next
// one, so the chain keeps running regardless of how much key input
// arrives in between.
type tickMsg struct{}

// Model is the top-level bubbletea model for the dashboard. It owns
// the active tab and the precomputed issuance result; nothing else is
// mutable, and nothing is shared with other goroutines.
type Model struct {
	result *issuance.Result
	theme  Theme
	keys   KeyMap

	tickInterval time.Duration

	// Active tab.
	activeTab Tab

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool
}

// NewModel creates a Model over a completed issuance result. A
// non-positive tick interval falls back to DefaultTickInterval.
func NewModel(result *issuance.Result, tickInterval time.Duration) Model {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	return Model{
		result:       result,
		theme:        DefaultTheme,
		keys:         DefaultKeyMap,
		tickInterval: tickInterval,
		activeTab:    TabHome,
	}
}

// ActiveTab returns the currently active tab.
func (model Model) ActiveTab() Tab {
	return model.activeTab
}

// Init implements tea.Model. Starts the tick chain.
func (model Model) Init() tea.Cmd {
	return model.scheduleTick()
}

// scheduleTick returns a command that delivers the next tickMsg after
// the configured interval.
func (model Model) scheduleTick() tea.Cmd {
	return tea.Tick(model.tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update implements tea.Model. Keys drive the tab state machine;
// ticks only reschedule themselves (the framework redraws after every
// message, so a tick is a forced redraw and nothing more).
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.Home):
			model.activeTab = TabHome
		case key.Matches(message, model.keys.Issue):
			model.activeTab = TabIssue
		case key.Matches(message, model.keys.Verify):
			model.activeTab = TabVerify
		}
		// Unrecognized keys are self-transitions.

	case tickMsg:
		return model, model.scheduleTick()

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
	}
	return model, nil
}

// View implements tea.Model. Renders the fixed three-row layout: tab
// bar, active panel, help footer.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	header := renderHeader(model.theme, model.keys, model.activeTab, model.width)
	footer := renderFooter(model.theme, model.keys, model.width)

	// The panel fills everything between the one-line header and the
	// one-line footer.
	panelHeight := model.height - 2
	panel := renderPanel(model.theme, model.activeTab, model.result, model.width, panelHeight)

	return header + "\n" + panel + "\n" + footer
}
