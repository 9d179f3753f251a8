package dashboard

import (
	"strings"

	"github.com/tonhe/poewatch/internal/api"
)

// Connection failure banner text, shown when the backend cannot be reached.
const (
	BannerMessage     = "Server connection failed. Is the backend running?"
	BannerRemediation = "backend: uvicorn main:app --host 0.0.0.0 --port 8001"
)

// NoRatesMessage is shown while the backend has no exchange rates.
const NoRatesMessage = "No exchange rate data yet. The scheduler is still collecting."

// NoOpportunitiesMessage is shown while no opportunities have been computed.
const NoOpportunitiesMessage = "No profit opportunities yet. They appear once enough data is collected."

// StatCard is one tile of the stats row.
type StatCard struct {
	Label string
	Value string
	// IsStatus marks the scheduler tile, which is coloured by Active.
	IsStatus bool
	Active   bool
}

// StatCards lays out the six tiles of the stats row. It returns nil when no
// stats have been fetched.
func StatCards(s *api.Stats) []StatCard {
	if s == nil {
		return nil
	}
	sched := StatCard{Label: "Scheduler", Value: "Inactive", IsStatus: true, Active: s.SchedulerActive}
	if s.SchedulerActive {
		sched.Value = "Active"
	}
	return []StatCard{
		{Label: "Leagues", Value: FormatCount(s.Leagues)},
		{Label: "Currencies", Value: FormatCount(s.Currencies)},
		{Label: "Base items", Value: FormatCount(s.Bases)},
		{Label: "Modifiers", Value: FormatCount(s.Modifiers)},
		{Label: "Rate records", Value: FormatCount(s.ExchangeRates)},
		sched,
	}
}

type RateRow struct {
	Pair   string
	Value  string
	Detail string
}

// Rates is the exchange rate panel. When Available is false only Message is
// meaningful.
type Rates struct {
	Available   bool
	Message     string
	LastUpdated string
	Rows        []RateRow
}

func RatePanel(r *api.ExchangeRates) Rates {
	if !r.Available() {
		return Rates{Message: NoRatesMessage}
	}
	return Rates{
		Available:   true,
		LastUpdated: FormatTimestamp(r.LastUpdated),
		Rows: []RateRow{
			{
				Pair:   "Divine → Exalt",
				Value:  FormatRate(r.DivineToExalt, 1),
				Detail: "1 Divine = " + FormatRate(r.DivineToExalt, 1) + " Exalted",
			},
			{
				Pair:   "Divine → Chaos",
				Value:  FormatRate(r.DivineToChaos, 0),
				Detail: "1 Divine = " + FormatRate(r.DivineToChaos, 0) + " Chaos",
			},
			{
				Pair:   "Exalt → Chaos",
				Value:  FormatRate(r.ExaltToChaos, 1),
				Detail: "1 Exalted = " + FormatRate(r.ExaltToChaos, 1) + " Chaos",
			},
		},
	}
}

type JobRow struct {
	Name    string
	NextRun string
}

// Jobs is the scheduler panel.
type Jobs struct {
	Running bool
	Status  string
	Count   int
	Rows    []JobRow
}

// JobsPanel returns ok=false when no scheduler status has been fetched.
func JobsPanel(s *api.SchedulerStatus) (Jobs, bool) {
	if s == nil {
		return Jobs{}, false
	}
	j := Jobs{Running: s.Running, Status: "Stopped", Count: s.JobsCount}
	if s.Running {
		j.Status = "Running"
	}
	for _, job := range s.Jobs {
		name := job.Name
		if name == "" {
			name = job.ID
		}
		j.Rows = append(j.Rows, JobRow{Name: name, NextRun: FormatTimestamp(job.NextRun)})
	}
	return j, true
}

// RankedOpportunity is an opportunity prepared for display. Rank is the
// 1-based position in the backend's ordering.
type RankedOpportunity struct {
	Rank         int
	Risk         Risk
	RiskLabel    string // backend text, or "Unknown" when empty
	NetProfit    string
	ROI          string
	BaseCost     string
	CraftingCost string
	SalePrice    string
	SuccessRate  string
}

func riskLabel(raw string) string {
	if s := strings.TrimSpace(raw); s != "" {
		return s
	}
	return RiskUnknown.Label()
}

func RankOpportunities(o *api.Opportunities) []RankedOpportunity {
	if o == nil {
		return nil
	}
	out := make([]RankedOpportunity, 0, len(o.Opportunities))
	for i, opp := range o.Opportunities {
		out = append(out, RankedOpportunity{
			Rank:         i + 1,
			Risk:         ClassifyRisk(opp.Risk),
			RiskLabel:    riskLabel(opp.Risk),
			NetProfit:    "+" + FormatDivine(opp.NetProfit) + " Div",
			ROI:          FormatROI(opp.ROI),
			BaseCost:     FormatDivine(opp.BaseCost) + " Div",
			CraftingCost: FormatDivine(opp.CraftingCost) + " Div",
			SalePrice:    FormatDivine(opp.SalePrice) + " Div",
			SuccessRate:  FormatSuccessRate(opp.SuccessRate),
		})
	}
	return out
}
