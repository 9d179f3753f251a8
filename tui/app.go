package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/poewatch/internal/config"
	"github.com/tonhe/poewatch/internal/engine"
	"github.com/tonhe/poewatch/tui/components"
	"github.com/tonhe/poewatch/tui/keys"
	"github.com/tonhe/poewatch/tui/styles"
	"github.com/tonhe/poewatch/tui/views"
)

// AppState represents the current screen of the application.
type AppState int

const (
	StateOverview AppState = iota
	StateBases
	StateDiagnostics
	StateSettings
)

// tabOrder is the rotation used by the tab key.
var tabOrder = []AppState{StateOverview, StateBases, StateDiagnostics}

func (s AppState) String() string {
	switch s {
	case StateOverview:
		return "Overview"
	case StateBases:
		return "Base Items"
	case StateDiagnostics:
		return "Diagnostics"
	case StateSettings:
		return "Settings"
	default:
		return "unknown"
	}
}

// StateMsg carries a scheduler state change into the update loop.
type StateMsg struct {
	State engine.State
}

// subscriptionClosedMsg is delivered once the scheduler has stopped.
type subscriptionClosedMsg struct{}

// TickMsg re-renders relative times once a second.
type TickMsg time.Time

// AppModel is the root Bubble Tea model. It owns the scheduler and routes
// its state to every view.
type AppModel struct {
	state      AppState
	prevState  AppState
	theme      styles.Theme
	config     *config.Config
	configPath string
	version    string

	sched   *engine.Scheduler
	sub     <-chan engine.Event
	current engine.State
	now     func() time.Time

	spinner     spinner.Model
	overview    views.OverviewView
	bases       views.BasesView
	diagnostics views.DiagnosticsView
	settings    views.SettingsView
	help        views.HelpView

	width  int
	height int
}

// NewAppModel creates the root model. The scheduler is started by Init and
// stopped when the user quits.
func NewAppModel(cfg *config.Config, configPath string, sched *engine.Scheduler, version string) AppModel {
	theme, _ := styles.Resolve(cfg.Theme)
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := AppModel{
		state:      StateOverview,
		config:     cfg,
		configPath: configPath,
		version:    version,
		sched:      sched,
		sub:        sched.Subscribe(),
		current:    sched.State(),
		now:        time.Now,
		spinner:    sp,
		bases:      views.NewBasesView(theme, cfg.PageSize),
	}
	m.applyTheme(theme)
	return m
}

// Init starts the scheduler and the UI timers.
func (m AppModel) Init() tea.Cmd {
	m.sched.Start()
	return tea.Batch(waitForEvent(m.sub), m.spinner.Tick, tickCmd())
}

func waitForEvent(ch <-chan engine.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return subscriptionClosedMsg{}
		}
		return StateMsg{State: ev.State}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *AppModel) applyTheme(theme styles.Theme) {
	m.theme = theme
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Base0C)
	m.overview = views.NewOverviewView(theme)
	m.diagnostics = views.NewDiagnosticsView(theme, m.config.APIURL)
	m.help = views.NewHelpView(theme)
	m.bases.SetTheme(theme)
	m.resize()
	m.pushState()
}

// pushState hands the latest engine state and spinner frame to the views.
func (m *AppModel) pushState() {
	frame := m.spinner.View()
	m.overview.SetState(m.current)
	m.overview.SetSpinner(frame)
	m.bases.SetState(m.current)
	m.bases.SetSpinner(frame)
	m.diagnostics.SetState(m.current)
}

func (m *AppModel) bodyHeight() int {
	// 1 header line, 2 status bar lines
	return max(1, m.height-3)
}

func (m *AppModel) resize() {
	h := m.bodyHeight()
	m.overview.SetSize(m.width, h)
	m.bases.SetSize(m.width, h)
	m.diagnostics.SetSize(m.width, h)
	m.settings.SetSize(m.width, h)
	m.help.SetSize(m.width, h)
}

// Update handles messages and dispatches to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case StateMsg:
		m.current = msg.State
		m.pushState()
		return m, waitForEvent(m.sub)

	case subscriptionClosedMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.pushState()
		return m, cmd

	case TickMsg:
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == StateBases {
		var cmd tea.Cmd
		m.bases, cmd = m.bases.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.sched.Stop()
	return m, tea.Quit
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.state == StateSettings {
		var (
			cmd    tea.Cmd
			action views.SettingsAction
		)
		m.settings, cmd, action = m.settings.Update(msg)
		switch action {
		case views.SettingsClose:
			m.state = m.prevState
		case views.SettingsSaved:
			theme, _ := styles.Resolve(m.config.Theme)
			m.bases.SetPageSize(m.config.PageSize)
			m.applyTheme(theme)
			m.state = m.prevState
		}
		return m, cmd
	}

	if m.help.IsVisible() {
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Quit):
			return m.quit()
		case key.Matches(msg, keys.DefaultKeyMap.Help), key.Matches(msg, keys.DefaultKeyMap.Escape):
			m.help.Toggle()
		}
		return m, nil
	}

	// While the search box has focus every key is text.
	if m.state == StateBases && m.bases.Searching() {
		var cmd tea.Cmd
		m.bases, cmd = m.bases.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Quit):
		return m.quit()
	case key.Matches(msg, keys.DefaultKeyMap.Refresh):
		m.sched.Trigger()
		return m, nil
	case key.Matches(msg, keys.DefaultKeyMap.Tab):
		m.state = nextView(m.state)
		return m, nil
	case key.Matches(msg, keys.DefaultKeyMap.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, keys.DefaultKeyMap.Settings):
		m.prevState = m.state
		m.settings = views.NewSettingsView(m.theme, m.config, m.configPath)
		m.settings.SetSize(m.width, m.bodyHeight())
		m.state = StateSettings
		return m, nil
	}

	if m.state == StateBases {
		var cmd tea.Cmd
		m.bases, cmd = m.bases.Update(msg)
		return m, cmd
	}
	return m, nil
}

func nextView(s AppState) AppState {
	for i, v := range tabOrder {
		if v == s {
			return tabOrder[(i+1)%len(tabOrder)]
		}
	}
	return StateOverview
}

func (m AppModel) hints() []components.KeyHint {
	switch {
	case m.state == StateSettings:
		return []components.KeyHint{{Key: "enter", Desc: "save"}, {Key: "esc", Desc: "cancel"}}
	case m.state == StateBases && m.bases.Searching():
		return []components.KeyHint{{Key: "enter", Desc: "done"}, {Key: "esc", Desc: "clear"}}
	case m.state == StateBases:
		return []components.KeyHint{
			{Key: "/", Desc: "search"}, {Key: "n/p", Desc: "page"}, {Key: "r", Desc: "refresh"},
			{Key: "tab", Desc: "view"}, {Key: "?", Desc: "help"}, {Key: "q", Desc: "quit"},
		}
	default:
		return []components.KeyHint{
			{Key: "r", Desc: "refresh"}, {Key: "tab", Desc: "view"}, {Key: "s", Desc: "settings"},
			{Key: "?", Desc: "help"}, {Key: "q", Desc: "quit"},
		}
	}
}

// View renders the full application UI by composing header, body, and status.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := components.RenderHeader(m.theme, components.HeaderInfo{
		Connectivity: m.current.Connectivity,
		Loading:      m.current.Phase == engine.PhaseFetching,
		Spinner:      m.spinner.View(),
		LastRefresh:  m.current.LastRefresh,
		View:         m.state.String(),
		Version:      m.version,
	}, m.width)

	var body string
	switch {
	case m.help.IsVisible():
		body = m.help.View()
	case m.state == StateBases:
		body = m.bases.View()
	case m.state == StateDiagnostics:
		body = m.diagnostics.View()
	case m.state == StateSettings:
		body = m.settings.View()
	default:
		body = m.overview.View()
	}

	statusBar := components.RenderStatusBar(m.theme, components.StatusInfo{
		Interval:    m.sched.Interval(),
		LastRefresh: m.current.LastRefresh,
		Now:         m.now(),
		OKCount:     m.current.HealthyCount(),
		TotalCount:  len(engine.Resources),
		Latencies:   components.LatencySeries(m.current.History),
		Hints:       m.hints(),
	}, m.width)

	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}
