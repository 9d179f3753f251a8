package api

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Timestamp accepts the ISO-8601 forms the backend emits. Python's
// isoformat() omits the zone for naive datetimes; those are read as local
// time, matching how a browser would interpret them.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := strings.Trim(string(data), `"`)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		var (
			parsed time.Time
			err    error
		)
		if layout == time.RFC3339Nano {
			parsed, err = time.Parse(layout, s)
		} else {
			parsed, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Info is the payload of GET /.
type Info struct {
	Message       string     `json:"message"`
	Version       string     `json:"version"`
	Status        string     `json:"status"`
	SchedulerJobs int        `json:"scheduler_jobs"`
	Timestamp     *Timestamp `json:"timestamp"`
}

// Health is the payload of GET /health.
type Health struct {
	Status    string     `json:"status"`
	Database  string     `json:"database"`
	Scheduler string     `json:"scheduler"`
	Timestamp *Timestamp `json:"timestamp"`
}

// Stats holds the aggregate row counts reported by GET /api/stats.
type Stats struct {
	Leagues             int        `json:"leagues"`
	Currencies          int        `json:"currencies"`
	Bases               int        `json:"bases"`
	Modifiers           int        `json:"modifiers"`
	ExchangeRates       int        `json:"exchange_rates"`
	ProfitOpportunities int        `json:"profit_opportunities"`
	SchedulerActive     bool       `json:"scheduler_active"`
	SchedulerJobs       int        `json:"scheduler_jobs"`
	Timestamp           *Timestamp `json:"timestamp"`
}

// ExchangeRates is the latest currency conversion row. When the backend has
// not collected any rates yet it answers with only Message set.
type ExchangeRates struct {
	DivineToExalt *float64   `json:"divine_to_exalt,omitempty"`
	DivineToChaos *float64   `json:"divine_to_chaos,omitempty"`
	ExaltToChaos  *float64   `json:"exalt_to_chaos,omitempty"`
	LastUpdated   *Timestamp `json:"last_updated,omitempty"`
	Message       string     `json:"message,omitempty"`
}

// Available reports whether the payload carries actual rates.
func (r *ExchangeRates) Available() bool {
	return r != nil && r.Message == ""
}

type League struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Realm    string `json:"realm"`
	Type     string `json:"type"`
}

type Leagues struct {
	Count   int      `json:"count"`
	Leagues []League `json:"leagues"`
}

type Currency struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameKR string `json:"name_kr"`
	Type   string `json:"type"`
	Rarity string `json:"rarity"`
}

type Currencies struct {
	Count      int        `json:"count"`
	Currencies []Currency `json:"currencies"`
}

// BaseItem is a craftable base type.
type BaseItem struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	RequiredLevel *int   `json:"required_level"`
}

type Bases struct {
	Count int        `json:"count"`
	Bases []BaseItem `json:"bases"`
}

type Modifier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsPrefix    bool   `json:"is_prefix"`
}

type Modifiers struct {
	Count     int        `json:"count"`
	Modifiers []Modifier `json:"modifiers"`
}

// Opportunity is one ranked crafting opportunity. Monetary values are in
// Divine Orbs; any of them may be null.
type Opportunity struct {
	ID           int      `json:"id"`
	BaseCost     *float64 `json:"base_cost"`
	CraftingCost *float64 `json:"crafting_cost"`
	SalePrice    *float64 `json:"sale_price"`
	NetProfit    *float64 `json:"net_profit"`
	ROI          *float64 `json:"roi"`
	SuccessRate  *float64 `json:"success_rate"`
	Risk         string   `json:"risk"`
}

// Opportunities is ordered by ROI, best first. Rank is the slice position.
type Opportunities struct {
	Count         int           `json:"count"`
	Opportunities []Opportunity `json:"opportunities"`
}

type SchedulerJob struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	NextRun *Timestamp `json:"next_run"`
}

type SchedulerStatus struct {
	Running   bool           `json:"running"`
	JobsCount int            `json:"jobs_count"`
	Jobs      []SchedulerJob `json:"jobs"`
}
