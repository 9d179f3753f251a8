package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/poewatch/internal/dashboard"
	"github.com/tonhe/poewatch/internal/engine"
	"github.com/tonhe/poewatch/tui/components"
	"github.com/tonhe/poewatch/tui/styles"
)

// DiagnosticsView shows per-resource freshness and errors on top and a
// refresh latency chart below.
type DiagnosticsView struct {
	theme  styles.Theme
	sty    *styles.Styles
	state  engine.State
	apiURL string
	now    func() time.Time
	width  int
	height int
}

func NewDiagnosticsView(theme styles.Theme, apiURL string) DiagnosticsView {
	return DiagnosticsView{
		theme:  theme,
		sty:    styles.NewStyles(theme),
		apiURL: apiURL,
		now:    time.Now,
	}
}

func (v *DiagnosticsView) SetState(st engine.State) {
	v.state = st
}

func (v *DiagnosticsView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v DiagnosticsView) View() string {
	info := v.renderInfoPanel()
	table := v.renderResources()

	used := lipgloss.Height(info) + lipgloss.Height(table) + 2
	chartHeight := v.height - used
	if chartHeight < 6 {
		chartHeight = 6
	}
	chartWidth := v.width - 4
	if chartWidth < 20 {
		chartWidth = 20
	}
	chart := components.RenderChart(components.LatencySeries(v.state.History), chartWidth, chartHeight, "Refresh latency", nil)
	chart = lipgloss.NewStyle().Foreground(v.theme.Base0C).Render(chart)

	return lipgloss.JoinVertical(lipgloss.Left, info, "", table, "", chart)
}

func (v DiagnosticsView) renderInfoPanel() string {
	labelStyle := lipgloss.NewStyle().Foreground(v.theme.Base04).Width(16)
	valueStyle := lipgloss.NewStyle().Foreground(v.theme.Base05)

	conn := v.sty.StatusDown.Render(v.state.Connectivity.String())
	if v.state.Connectivity == engine.Connected {
		conn = v.sty.StatusUp.Render(v.state.Connectivity.String())
	}
	lastErr := "-"
	if v.state.LastErr != nil {
		lastErr = v.state.LastErr.Error()
	}

	row := func(label, value string) string {
		return "  " + labelStyle.Render(label) + value
	}
	rows := []string{
		row("Backend:", valueStyle.Render(v.apiURL)),
		row("Connectivity:", conn),
		row("Phase:", valueStyle.Render(v.state.Phase.String())),
		row("Cycles:", valueStyle.Render(fmt.Sprintf("%s (%s failed)",
			dashboard.FormatCount(v.state.CycleCount), dashboard.FormatCount(v.state.ErrorCount)))),
		row("Last refresh:", valueStyle.Render(dashboard.FormatAgo(v.state.LastRefresh, v.now()))),
		row("Last error:", v.sty.StatusDown.Render(truncate(lastErr, max(20, v.width-22)))),
	}
	return strings.Join(rows, "\n")
}

func (v DiagnosticsView) renderResources() string {
	now := v.now()
	errWidth := max(10, v.width-56)
	lines := []string{v.sty.TableHeader.Render("  " +
		padRight("Resource", 24) + padRight("Status", 9) + padRight("Updated", 20) + "Error")}

	for _, r := range engine.Resources {
		status := v.sty.TableCellDim.Render(padRight("-", 9))
		errText := ""
		switch err := v.state.Failure(r); {
		case err != nil:
			status = v.sty.StatusDown.Render(padRight("ERR", 9))
			errText = truncate(err.Error(), errWidth)
			if v.state.Snapshot.Has(r) {
				status = v.sty.StatusWarn.Render(padRight("STALE", 9))
			}
		case v.state.Snapshot.Has(r):
			status = v.sty.StatusUp.Render(padRight("OK", 9))
		}
		updated := dashboard.FormatAgo(v.state.Snapshot.Updated(r), now)
		lines = append(lines, "  "+
			v.sty.TableRow.Render(padRight(r.String(), 24))+
			status+
			v.sty.TableCellDim.Render(padRight(updated, 20))+
			v.sty.StatusDown.Render(errText))
	}
	return strings.Join(lines, "\n")
}
