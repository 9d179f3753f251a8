package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonhe/poewatch/internal/api"
	"github.com/tonhe/poewatch/internal/config"
	"github.com/tonhe/poewatch/internal/engine"
	"github.com/tonhe/poewatch/internal/logging"
)

type stubRefresher struct{}

func (stubRefresher) Refresh(ctx context.Context) (engine.Cycle, error) {
	return engine.Cycle{}, nil
}

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	sched := engine.NewScheduler(stubRefresher{}, engine.Options{Logger: logging.Discard()})
	t.Cleanup(sched.Stop)
	cfg := config.DefaultConfig()
	m := NewAppModel(cfg, filepath.Join(t.TempDir(), "config.toml"), sched, "test")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(AppModel)
}

func press(t *testing.T, m AppModel, msg tea.KeyMsg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTabCyclesViews(t *testing.T) {
	m := newTestApp(t)
	want := []AppState{StateBases, StateDiagnostics, StateOverview}
	for _, w := range want {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.state != w {
			t.Fatalf("expected %s, got %s", w, m.state)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newTestApp(t)
	_, cmd := press(t, m, runeKey("q"))
	if !isQuit(cmd) {
		t.Error("q should quit")
	}
}

func TestQuitIgnoredWhileSearching(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runeKey("/"))
	if !m.bases.Searching() {
		t.Fatal("expected the search box to have focus")
	}
	m, cmd := press(t, m, runeKey("q"))
	if isQuit(cmd) {
		t.Fatal("q while searching should be text")
	}
	if m.bases.ViewState().SearchTerm != "q" {
		t.Errorf("expected search term q, got %q", m.bases.ViewState().SearchTerm)
	}
	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should always quit")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, runeKey("?"))
	if !m.help.IsVisible() {
		t.Fatal("expected help to show")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help overlay not rendered")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != StateOverview {
		t.Error("keys other than close should be ignored under help")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.help.IsVisible() {
		t.Error("esc should close help")
	}
}

func TestStateMsgUpdatesViews(t *testing.T) {
	m := newTestApp(t)
	var st engine.State
	st.Connectivity = engine.Connected
	st.Snapshot.Bases = &api.Bases{Count: 1, Bases: []api.BaseItem{{ID: 1, Name: "Leather Belt"}}}

	next, cmd := m.Update(StateMsg{State: st})
	m = next.(AppModel)
	if cmd == nil {
		t.Error("expected the app to keep listening for events")
	}
	if m.current.Connectivity != engine.Connected {
		t.Error("state not applied")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "Leather Belt") {
		t.Error("bases view did not receive the snapshot")
	}
}

func TestDisconnectedBanner(t *testing.T) {
	m := newTestApp(t)
	st := engine.State{Connectivity: engine.Disconnected, LastErr: engine.ErrOrchestration}
	next, _ := m.Update(StateMsg{State: st})
	m = next.(AppModel)
	if !strings.Contains(m.View(), "Server connection failed") {
		t.Error("expected the connection banner")
	}
}

func TestSettingsOpenAndCancel(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runeKey("s"))
	if m.state != StateSettings {
		t.Fatalf("expected settings, got %s", m.state)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateBases {
		t.Errorf("expected return to bases, got %s", m.state)
	}
}

func TestSettingsSaveAppliesTheme(t *testing.T) {
	m := newTestApp(t)
	before := m.config.Theme
	m, _ = press(t, m, runeKey("s"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != StateOverview {
		t.Fatalf("expected overview after save, got %s", m.state)
	}
	if m.config.Theme == before {
		t.Error("theme not changed")
	}
	if m.theme.Name == "" {
		t.Error("theme not applied")
	}
}

func TestNextView(t *testing.T) {
	if nextView(StateSettings) != StateOverview {
		t.Error("unknown state should fall back to overview")
	}
}
