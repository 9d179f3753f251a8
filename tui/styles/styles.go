package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/poewatch/internal/dashboard"
)

// Styles holds all themed lipgloss styles for the application.
type Styles struct {
	// Key hints
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style

	// Table
	TableHeader  lipgloss.Style
	TableRow     lipgloss.Style
	TableCellDim lipgloss.Style

	// Status colors
	StatusUp   lipgloss.Style
	StatusDown lipgloss.Style
	StatusWarn lipgloss.Style

	// Panels
	SectionTitle lipgloss.Style
	Card         lipgloss.Style
	CardValue    lipgloss.Style
	CardLabel    lipgloss.Style
	Accent       lipgloss.Style
	Profit       lipgloss.Style
	Banner       lipgloss.Style

	// Modal / overlay
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style

	// Search
	SearchPrompt lipgloss.Style
	Hint         lipgloss.Style

	riskLow     lipgloss.Style
	riskMedium  lipgloss.Style
	riskHigh    lipgloss.Style
	riskUnknown lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		FooterKey: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		FooterDesc: lipgloss.NewStyle().
			Foreground(theme.Base04),

		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		TableRow: lipgloss.NewStyle().
			Foreground(theme.Base05),
		TableCellDim: lipgloss.NewStyle().
			Foreground(theme.Base03),

		StatusUp: lipgloss.NewStyle().
			Foreground(theme.Base0B),
		StatusDown: lipgloss.NewStyle().
			Foreground(theme.Base08),
		StatusWarn: lipgloss.NewStyle().
			Foreground(theme.Base0A),

		SectionTitle: lipgloss.NewStyle().
			Foreground(theme.Base0E).
			Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base02).
			Padding(0, 1).
			Align(lipgloss.Center),
		CardValue: lipgloss.NewStyle().
			Foreground(theme.Base0A).
			Bold(true),
		CardLabel: lipgloss.NewStyle().
			Foreground(theme.Base04),
		Accent: lipgloss.NewStyle().
			Foreground(theme.Base0A).
			Bold(true),
		Profit: lipgloss.NewStyle().
			Foreground(theme.Base0B).
			Bold(true),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Base08).
			Foreground(theme.Base08).
			Padding(0, 1),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base0D).
			BorderBackground(theme.Base00).
			Background(theme.Base00).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),

		SearchPrompt: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(theme.Base0A).
			Italic(true),

		riskLow: lipgloss.NewStyle().
			Foreground(theme.Base0B),
		riskMedium: lipgloss.NewStyle().
			Foreground(theme.Base0A),
		riskHigh: lipgloss.NewStyle().
			Foreground(theme.Base08),
		riskUnknown: lipgloss.NewStyle().
			Foreground(theme.Base03),
	}
}

// Risk returns the style for a risk class.
func (s *Styles) Risk(r dashboard.Risk) lipgloss.Style {
	switch r {
	case dashboard.RiskLow:
		return s.riskLow
	case dashboard.RiskMedium:
		return s.riskMedium
	case dashboard.RiskHigh:
		return s.riskHigh
	default:
		return s.riskUnknown
	}
}
