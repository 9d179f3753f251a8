package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/poewatch/internal/dashboard"
	"github.com/tonhe/poewatch/internal/engine"
	"github.com/tonhe/poewatch/tui/styles"
)

// HeaderInfo is what the header bar shows.
type HeaderInfo struct {
	Connectivity engine.Connectivity
	Loading      bool
	// Spinner is the rendered spinner frame shown while Loading.
	Spinner     string
	LastRefresh time.Time
	View        string
	Version     string
}

// RenderHeader renders the top header bar with app name, active view,
// connectivity, last update time, and a spinner while a cycle is in flight.
func RenderHeader(theme styles.Theme, info HeaderInfo, width int) string {
	seg := func(fg lipgloss.Color, bold bool, s string) string {
		return lipgloss.NewStyle().
			Foreground(fg).
			Background(theme.Base01).
			Bold(bold).
			Render(s)
	}

	left := seg(theme.Base0A, true, "poewatch")
	view := seg(theme.Base05, false, info.View)

	status := seg(theme.Base08, false, engine.Disconnected.String())
	if info.Connectivity == engine.Connected {
		status = seg(theme.Base0B, false, engine.Connected.String())
	}

	updated := seg(theme.Base04, false, "updated "+dashboard.FormatClock(info.LastRefresh))

	activity := seg(theme.Base04, false, " ")
	if info.Loading {
		activity = seg(theme.Base0C, false, info.Spinner+" refreshing")
	}

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s  %s", left, view, status, updated, activity)
	if info.Version != "" {
		content += "  " + seg(theme.Base03, false, "v"+info.Version)
	}

	return lipgloss.NewStyle().
		Background(theme.Base01).
		Width(width).
		Render(content)
}
