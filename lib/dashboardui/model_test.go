// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package dashboardui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chriamue/iota-identity-examples/lib/config"
	"github.com/chriamue/iota-identity-examples/lib/identity"
	"github.com/chriamue/iota-identity-examples/lib/issuance"
)

// testResult runs a full issuance against an in-memory ledger so the
// model tests render real QR grids and a real credential.
func testResult(t *testing.T) *issuance.Result {
	t.Helper()
	orchestrator := issuance.New(identity.NewService(identity.NewMemoryLedger(), nil), config.Default(), nil)
	result, err := orchestrator.Run(context.Background())
	if err != nil {
		t.Fatalf("issuance failed: %v", err)
	}
	return result
}

// pressKey runs a single rune key through Update and returns the new
// model.
func pressKey(t *testing.T, model Model, r rune) Model {
	t.Helper()
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	model := NewModel(testResult(t), 0)

	if model.ActiveTab() != TabHome {
		t.Errorf("new model should start on Home, got %v", model.ActiveTab())
	}
	if model.tickInterval != DefaultTickInterval {
		t.Errorf("non-positive tick interval should fall back to %v, got %v",
			DefaultTickInterval, model.tickInterval)
	}
	if model.ready {
		t.Error("model should not be ready before the first WindowSizeMsg")
	}

	model = NewModel(nil, 50*time.Millisecond)
	if model.tickInterval != 50*time.Millisecond {
		t.Errorf("expected 50ms tick interval, got %v", model.tickInterval)
	}
}

func TestModelInitSchedulesTick(t *testing.T) {
	model := NewModel(testResult(t), 0)
	if model.Init() == nil {
		t.Fatal("Init should schedule the first tick")
	}
}

// TestModelMenuScenario drives the model through a full session: issue,
// a tick in between, verify, quit. Ticks must not disturb the active
// tab, and quit must produce a QuitMsg.
func TestModelMenuScenario(t *testing.T) {
	model := NewModel(testResult(t), 0)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)

	model = pressKey(t, model, 'i')
	if model.ActiveTab() != TabIssue {
		t.Fatalf("expected TabIssue after pressing i, got %v", model.ActiveTab())
	}

	updated, command := model.Update(tickMsg{})
	model = updated.(Model)
	if model.ActiveTab() != TabIssue {
		t.Errorf("tick changed the active tab to %v", model.ActiveTab())
	}
	if command == nil {
		t.Error("tick should reschedule itself")
	}

	model = pressKey(t, model, 'v')
	if model.ActiveTab() != TabVerify {
		t.Fatalf("expected TabVerify after pressing v, got %v", model.ActiveTab())
	}

	_, command = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if command == nil {
		t.Fatal("q key should return a command")
	}
	message := command()
	if _, isQuit := message.(tea.QuitMsg); !isQuit {
		t.Errorf("expected QuitMsg, got %T", message)
	}
}

func TestModelTabSwitching(t *testing.T) {
	model := NewModel(testResult(t), 0)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)

	model = pressKey(t, model, 'i')
	if model.ActiveTab() != TabIssue {
		t.Errorf("expected TabIssue after pressing i, got %v", model.ActiveTab())
	}

	model = pressKey(t, model, 'h')
	if model.ActiveTab() != TabHome {
		t.Errorf("expected TabHome after pressing h, got %v", model.ActiveTab())
	}

	model = pressKey(t, model, 'v')
	if model.ActiveTab() != TabVerify {
		t.Errorf("expected TabVerify after pressing v, got %v", model.ActiveTab())
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	model := NewModel(testResult(t), 0)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)
	model = pressKey(t, model, 'i')

	for _, r := range []rune{'x', '1', ' ', 'Q'} {
		model = pressKey(t, model, r)
		if model.ActiveTab() != TabIssue {
			t.Errorf("key %q changed the active tab to %v", r, model.ActiveTab())
		}
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	model := NewModel(testResult(t), 0)

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if command == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("ctrl+c should quit")
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	model := NewModel(testResult(t), 0)
	if model.View() != "Loading..." {
		t.Errorf("view before the first WindowSizeMsg should be the loading line, got %q", model.View())
	}
}

func TestModelView(t *testing.T) {
	result := testResult(t)
	model := NewModel(result, 0)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 45})
	model = updated.(Model)

	view := model.View()
	if lineCount := strings.Count(view, "\n") + 1; lineCount != 45 {
		t.Errorf("view should fill the terminal height, got %d lines", lineCount)
	}
	for _, label := range []string{"Home", "Issue", "Verify"} {
		if !strings.Contains(view, label) {
			t.Errorf("tab bar is missing the %s label", label)
		}
	}
	if !strings.Contains(view, "q quit") {
		t.Error("footer is missing the quit hint")
	}
	if !strings.Contains(view, "Welcome") || !strings.Contains(view, "SSI @ IOTA") {
		t.Error("home panel is missing the welcome text")
	}

	model = pressKey(t, model, 'i')
	view = model.View()
	if !strings.Contains(view, "issued by "+result.IssuerDID) {
		t.Error("issue panel is missing the issuer attribution")
	}
	if !strings.Contains(view, "█") {
		t.Error("issue panel is missing the QR glyphs")
	}

	model = pressKey(t, model, 'v')
	view = model.View()
	if !strings.Contains(view, "not wired into this demo") {
		t.Error("verify panel is missing the placeholder text")
	}
}

func TestModelViewWithoutResult(t *testing.T) {
	model := NewModel(nil, 0)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(Model)
	model = pressKey(t, model, 'i')

	if !strings.Contains(model.View(), "No credential issued.") {
		t.Error("issue panel without a result should show the empty state")
	}
}

func TestTabTitles(t *testing.T) {
	cases := map[Tab]string{
		TabHome:   "Home",
		TabIssue:  "Issue",
		TabVerify: "Verify",
		Tab(99):   "Unknown",
	}
	for tab, want := range cases {
		if got := tab.Title(); got != want {
			t.Errorf("Tab(%d).Title() = %q, want %q", tab, got, want)
		}
	}
}
