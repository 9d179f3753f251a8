package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/poewatch/internal/config"
	"github.com/tonhe/poewatch/internal/dashboard"
	"github.com/tonhe/poewatch/tui/keys"
	"github.com/tonhe/poewatch/tui/styles"
)

// SettingsAction describes what the app should do after a settings update.
type SettingsAction int

const (
	// SettingsNone means stay in the settings view.
	SettingsNone SettingsAction = iota
	// SettingsClose means the user left without saving.
	SettingsClose
	// SettingsSaved means the config was written; the app should apply it.
	SettingsSaved
)

const (
	settingsFieldTheme    = 0
	settingsFieldInterval = 1
	settingsFieldPageSize = 2
	settingsFieldCount    = 3
)

// SettingsView edits the persisted preferences with a live theme preview.
type SettingsView struct {
	theme      styles.Theme
	sty        *styles.Styles
	config     *config.Config
	configPath string

	themeIndex int
	cursor     int

	intervalInput textinput.Model
	pageSizeInput textinput.Model

	width  int
	height int
	err    string
}

// NewSettingsView populates the form from cfg. Saving writes to configPath.
func NewSettingsView(theme styles.Theme, cfg *config.Config, configPath string) SettingsView {
	idx := 0
	for i, slug := range styles.ListThemes() {
		if slug == cfg.Theme {
			idx = i
			break
		}
	}

	interval := textinput.New()
	interval.Placeholder = "30s"
	interval.CharLimit = 16
	interval.Width = 20
	interval.SetValue(cfg.RefreshInterval.String())

	pageSize := textinput.New()
	pageSize.Placeholder = strconv.Itoa(dashboard.DefaultPageSize)
	pageSize.CharLimit = 4
	pageSize.Width = 20
	pageSize.SetValue(strconv.Itoa(cfg.PageSize))

	return SettingsView{
		theme:         theme,
		sty:           styles.NewStyles(theme),
		config:        cfg,
		configPath:    configPath,
		themeIndex:    idx,
		intervalInput: interval,
		pageSizeInput: pageSize,
	}
}

func (s *SettingsView) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SelectedTheme returns the slug currently highlighted.
func (s SettingsView) SelectedTheme() string {
	return styles.ListThemes()[s.themeIndex]
}

// Err returns the last validation or save error, or "".
func (s SettingsView) Err() string {
	return s.err
}

func (s *SettingsView) focusInput() {
	s.intervalInput.Blur()
	s.pageSizeInput.Blur()
	switch s.cursor {
	case settingsFieldInterval:
		s.intervalInput.Focus()
	case settingsFieldPageSize:
		s.pageSizeInput.Focus()
	}
}

func (s *SettingsView) cycleTheme(delta int) {
	n := len(styles.ListThemes())
	s.themeIndex = (s.themeIndex + delta + n) % n
	s.theme, _ = styles.Resolve(s.SelectedTheme())
	s.sty = styles.NewStyles(s.theme)
}

func (s SettingsView) Update(msg tea.Msg) (SettingsView, tea.Cmd, SettingsAction) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, SettingsNone
	}
	switch {
	case key.Matches(km, keys.DefaultKeyMap.Escape):
		return s, nil, SettingsClose
	case key.Matches(km, keys.DefaultKeyMap.Enter):
		return s.save()
	case key.Matches(km, keys.DefaultKeyMap.Up):
		if s.cursor > 0 {
			s.cursor--
			s.focusInput()
		}
		return s, nil, SettingsNone
	case key.Matches(km, keys.DefaultKeyMap.Down), key.Matches(km, keys.DefaultKeyMap.Tab):
		s.cursor = (s.cursor + 1) % settingsFieldCount
		s.focusInput()
		return s, nil, SettingsNone
	case s.cursor == settingsFieldTheme && key.Matches(km, keys.DefaultKeyMap.Left):
		s.cycleTheme(-1)
		return s, nil, SettingsNone
	case s.cursor == settingsFieldTheme && key.Matches(km, keys.DefaultKeyMap.Right):
		s.cycleTheme(1)
		return s, nil, SettingsNone
	}

	var cmd tea.Cmd
	switch s.cursor {
	case settingsFieldInterval:
		s.intervalInput, cmd = s.intervalInput.Update(km)
	case settingsFieldPageSize:
		s.pageSizeInput, cmd = s.pageSizeInput.Update(km)
	}
	return s, cmd, SettingsNone
}

func (s SettingsView) save() (SettingsView, tea.Cmd, SettingsAction) {
	interval, err := time.ParseDuration(strings.TrimSpace(s.intervalInput.Value()))
	if err != nil {
		s.err = fmt.Sprintf("Invalid refresh interval: %v", err)
		return s, nil, SettingsNone
	}
	if interval < time.Second {
		s.err = "Refresh interval must be at least 1s"
		return s, nil, SettingsNone
	}
	pageSize, err := strconv.Atoi(strings.TrimSpace(s.pageSizeInput.Value()))
	if err != nil || pageSize < 1 {
		s.err = "Page size must be a positive integer"
		return s, nil, SettingsNone
	}

	s.config.Theme = s.SelectedTheme()
	s.config.RefreshInterval = interval
	s.config.PageSize = pageSize

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0700); err != nil {
		s.err = fmt.Sprintf("Failed to create directories: %v", err)
		return s, nil, SettingsNone
	}
	if err := config.SaveConfig(s.config, s.configPath); err != nil {
		s.err = fmt.Sprintf("Failed to save config: %v", err)
		return s, nil, SettingsNone
	}
	s.err = ""
	return s, nil, SettingsSaved
}

func (s SettingsView) View() string {
	activeLabel := lipgloss.NewStyle().Foreground(s.theme.Base0D).Bold(true)
	label := lipgloss.NewStyle().Foreground(s.theme.Base04)
	value := lipgloss.NewStyle().Foreground(s.theme.Base06)

	var b strings.Builder
	b.WriteString("\n  " + s.sty.SectionTitle.Render("Settings") + "\n\n")
	if s.err != "" {
		b.WriteString("  " + s.sty.StatusDown.Render(s.err) + "\n\n")
	}

	themeName := s.SelectedTheme()
	if t := styles.GetThemeByName(themeName); t != nil {
		themeName = t.Name
	}
	rows := []struct {
		label string
		value string
	}{
		{"Theme", value.Render(fmt.Sprintf("< %s >  (%d/%d)", themeName, s.themeIndex+1, len(styles.ListThemes())))},
		{"Refresh interval", s.intervalInput.View()},
		{"Page size", s.pageSizeInput.View()},
	}
	for i, r := range rows {
		indicator, lbl := "  ", label
		if i == s.cursor {
			indicator, lbl = activeLabel.Render("> "), activeLabel
		}
		b.WriteString("  " + indicator + lbl.Render(padRight(r.label+":", 20)) + r.value + "\n")
	}

	b.WriteString("\n" + s.renderPreview() + "\n")
	b.WriteString("  " + s.sty.Hint.Render("Refresh interval applies on next launch.") + "\n")
	b.WriteString("  " + s.renderHelp() + "\n")
	return b.String()
}

// renderPreview shows sample panels in the highlighted theme.
func (s SettingsView) renderPreview() string {
	sty := s.sty
	width := 56
	if s.width > 0 && s.width-6 < width {
		width = max(30, s.width-6)
	}
	sep := lipgloss.NewStyle().Foreground(s.theme.Base03)

	title := " Theme Preview "
	dashes := max(2, width-len(title))
	lines := []string{
		sep.Render(strings.Repeat("-", dashes/2)) + sty.ModalTitle.Render(title) + sep.Render(strings.Repeat("-", dashes-dashes/2)),
		sty.TableHeader.Render(padRight("Risk", 12) + padLeft("Net profit", 13) + padLeft("ROI", 7)),
	}
	samples := []struct {
		risk   dashboard.Risk
		profit string
		roi    string
	}{
		{dashboard.RiskLow, "+4.3 Div", "85%"},
		{dashboard.RiskMedium, "+2.1 Div", "42%"},
		{dashboard.RiskHigh, "+0.8 Div", "12%"},
	}
	for _, r := range samples {
		lines = append(lines,
			sty.Risk(r.risk).Render(padRight(r.risk.Icon()+" "+r.risk.Label(), 12))+
				sty.Profit.Render(padLeft(r.profit, 13))+
				sty.TableRow.Render(padLeft(r.roi, 7)))
	}
	lines = append(lines,
		sty.StatusUp.Render(padRight("CONNECTED", 14))+sty.StatusDown.Render("DISCONNECTED"),
		sep.Render(strings.Repeat("-", width)),
	)
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (s SettingsView) renderHelp() string {
	k := s.sty.FooterKey
	d := s.sty.FooterDesc
	hint := k.Render("[up/down]") + d.Render(" navigate  ")
	if s.cursor == settingsFieldTheme {
		hint = k.Render("[left/right]") + d.Render(" theme  ") + hint
	}
	return hint + k.Render("[enter]") + d.Render(" save  ") + k.Render("[esc]") + d.Render(" cancel")
}
