package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/poewatch/internal/dashboard"
	"github.com/tonhe/poewatch/tui/styles"
)

// StatusInfo is what the two-line status bar shows.
type StatusInfo struct {
	Interval    time.Duration
	LastRefresh time.Time
	Now         time.Time
	OKCount     int
	TotalCount  int
	// Latencies are recent cycle durations in milliseconds, oldest first.
	Latencies []float64
	Hints     []KeyHint
}

// KeyHint is one "key:desc" entry of the footer.
type KeyHint struct {
	Key  string
	Desc string
}

// RenderStatusBar renders the two-line status/footer bar: refresh info,
// resource health, cycle latency sparkline, and key bindings.
func RenderStatusBar(theme styles.Theme, info StatusInfo, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")
	text := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg)

	intervalSeg := text.Render(fmt.Sprintf("every %s", info.Interval))
	lastSeg := text.Render("last: " + dashboard.FormatAgo(info.LastRefresh, info.Now))

	healthColor := theme.Base0B
	if info.OKCount < info.TotalCount {
		healthColor = theme.Base0A
	}
	if info.OKCount == 0 {
		healthColor = theme.Base08
	}
	healthSeg := lipgloss.NewStyle().Foreground(healthColor).Background(bg).
		Render(fmt.Sprintf("%d/%d OK", info.OKCount, info.TotalCount))

	top := bgStyle.Render(" ") + intervalSeg + sep + lastSeg + sep + healthSeg
	if len(info.Latencies) > 0 {
		spark := lipgloss.NewStyle().Foreground(theme.Base0C).Background(bg).
			Render(Sparkline(info.Latencies, 20))
		latest := info.Latencies[len(info.Latencies)-1]
		top += sep + text.Render("latency ") + spark + text.Render(" "+FormatLatency(latest))
	}
	top = fill(top, width, bgStyle)

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	var keys strings.Builder
	keys.WriteString(bgStyle.Render(" "))
	for i, h := range info.Hints {
		if i > 0 {
			keys.WriteString(spacer)
		}
		keys.WriteString(keyStyle.Render(h.Key) + descStyle.Render(":"+h.Desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, fill(keys.String(), width, bgStyle))
}

// fill pads s with background to the full width.
func fill(s string, width int, bg lipgloss.Style) string {
	if w := lipgloss.Width(s); w < width {
		s += bg.Render(strings.Repeat(" ", width-w))
	}
	return s
}
