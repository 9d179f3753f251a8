package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/poewatch/internal/dashboard"
	"github.com/tonhe/poewatch/internal/engine"
	"github.com/tonhe/poewatch/tui/styles"
)

// Opportunity table column widths.
const (
	colRank    = 4
	colRisk    = 12
	colProfit  = 13
	colROI     = 7
	colCost    = 11
	colSuccess = 8
)

// OverviewView is the main screen: stats, exchange rates, top opportunities
// and scheduler jobs.
type OverviewView struct {
	theme   styles.Theme
	sty     *styles.Styles
	state   engine.State
	spinner string
	width   int
	height  int
}

func NewOverviewView(theme styles.Theme) OverviewView {
	return OverviewView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// SetState replaces the data shown.
func (v *OverviewView) SetState(st engine.State) {
	v.state = st
}

// SetSpinner sets the frame used for loading placeholders.
func (v *OverviewView) SetSpinner(frame string) {
	v.spinner = frame
}

func (v *OverviewView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v OverviewView) View() string {
	var sections []string
	if banner := renderBanner(v.sty, v.state, v.width); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections,
		v.renderStats(),
		v.renderRates(),
		v.renderOpportunities(),
		v.renderJobs(),
	)
	return strings.Join(sections, "\n\n")
}

// renderBanner shows the connection failure banner, or "" when connected.
func renderBanner(sty *styles.Styles, st engine.State, width int) string {
	if st.Connectivity == engine.Connected || st.LastErr == nil {
		return ""
	}
	body := dashboard.BannerMessage + "\n" + dashboard.BannerRemediation
	w := width - 4
	if w < 20 {
		w = 20
	}
	return sty.Banner.Width(w).Render(body)
}

func (v OverviewView) loading(title string) string {
	return v.sty.SectionTitle.Render(title) + "\n  " + v.sty.TableCellDim.Render(v.spinner+" loading...")
}

func (v OverviewView) renderStats() string {
	if v.state.PanelLoading(engine.ResourceStats) {
		return v.loading("Stats")
	}
	cards := dashboard.StatCards(v.state.Snapshot.Stats)
	if cards == nil {
		return v.sty.SectionTitle.Render("Stats") + "\n  " + v.sty.TableCellDim.Render("no data")
	}

	cardWidth := 14
	if v.width > 0 && v.width/len(cards)-2 > cardWidth {
		cardWidth = v.width/len(cards) - 2
	}
	rendered := make([]string, len(cards))
	for i, c := range cards {
		value := v.sty.CardValue.Render(c.Value)
		if c.IsStatus {
			if c.Active {
				value = v.sty.StatusUp.Bold(true).Render(c.Value)
			} else {
				value = v.sty.StatusDown.Bold(true).Render(c.Value)
			}
		}
		rendered[i] = v.sty.Card.Width(cardWidth).Render(value + "\n" + v.sty.CardLabel.Render(c.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (v OverviewView) renderRates() string {
	title := v.sty.SectionTitle.Render("Exchange Rates")
	if v.state.PanelLoading(engine.ResourceExchangeRates) {
		return v.loading("Exchange Rates")
	}
	p := dashboard.RatePanel(v.state.Snapshot.ExchangeRates)
	if !p.Available {
		return title + "\n  " + v.sty.TableCellDim.Render(p.Message)
	}
	lines := []string{title + "  " + v.sty.TableCellDim.Render("updated "+p.LastUpdated)}
	for _, r := range p.Rows {
		lines = append(lines, fmt.Sprintf("  %s %s  %s",
			v.sty.TableRow.Render(padRight(r.Pair, 16)),
			v.sty.Accent.Render(padLeft(r.Value, 8)),
			v.sty.TableCellDim.Render(r.Detail),
		))
	}
	return strings.Join(lines, "\n")
}

func (v OverviewView) renderOpportunities() string {
	if v.state.PanelLoading(engine.ResourceOpportunities) {
		return v.loading("Top Profit Opportunities")
	}
	ranked := dashboard.RankOpportunities(v.state.Snapshot.Opportunities)
	if len(ranked) == 0 {
		return v.sty.SectionTitle.Render("Top Profit Opportunities") + "\n  " +
			v.sty.TableCellDim.Render(dashboard.NoOpportunitiesMessage)
	}

	count := v.state.Snapshot.Opportunities.Count
	lines := []string{v.sty.SectionTitle.Render(fmt.Sprintf("Top Profit Opportunities (%s)", dashboard.FormatCount(count)))}

	header := "  " + padRight("#", colRank) +
		padRight("Risk", colRisk) +
		padLeft("Net profit", colProfit) +
		padLeft("ROI", colROI) +
		padLeft("Base", colCost) +
		padLeft("Craft", colCost) +
		padLeft("Sale", colCost) +
		padLeft("Success", colSuccess+1)
	lines = append(lines, v.sty.TableHeader.Render(header))

	for _, o := range ranked {
		risk := v.sty.Risk(o.Risk).Render(padRight(o.Risk.Icon()+" "+o.RiskLabel, colRisk))
		row := "  " + v.sty.Accent.Render(padRight(fmt.Sprintf("#%d", o.Rank), colRank)) +
			risk +
			v.sty.Profit.Render(padLeft(o.NetProfit, colProfit)) +
			v.sty.TableRow.Render(
				padLeft(o.ROI, colROI)+
					padLeft(o.BaseCost, colCost)+
					padLeft(o.CraftingCost, colCost)+
					padLeft(o.SalePrice, colCost)+
					padLeft(o.SuccessRate, colSuccess+1))
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (v OverviewView) renderJobs() string {
	if v.state.PanelLoading(engine.ResourceScheduler) {
		return v.loading("Scheduler")
	}
	jobs, ok := dashboard.JobsPanel(v.state.Snapshot.SchedulerStatus)
	if !ok {
		return ""
	}
	status := v.sty.StatusDown.Render(jobs.Status)
	if jobs.Running {
		status = v.sty.StatusUp.Render(jobs.Status)
	}
	lines := []string{v.sty.SectionTitle.Render("Scheduler") + "  " + status}
	if len(jobs.Rows) == 0 {
		lines = append(lines, "  "+v.sty.TableCellDim.Render("No jobs registered."))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, "  "+v.sty.TableCellDim.Render(fmt.Sprintf("%d jobs registered", jobs.Count)))
	for _, j := range jobs.Rows {
		lines = append(lines, fmt.Sprintf("  %s %s",
			v.sty.TableRow.Render(padRight(j.Name, 32)),
			v.sty.TableCellDim.Render("next run "+j.NextRun),
		))
	}
	return strings.Join(lines, "\n")
}
