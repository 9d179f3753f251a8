package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tonhe/poewatch/internal/api"
	"github.com/tonhe/poewatch/internal/dashboard"
	"github.com/tonhe/poewatch/internal/engine"
)

// report is the machine-readable form of one refresh cycle.
type report struct {
	FetchedAt       time.Time            `json:"fetched_at"`
	DurationMS      int64                `json:"duration_ms"`
	Backend         string               `json:"backend"`
	Health          *api.Health          `json:"health,omitempty"`
	Stats           *api.Stats           `json:"stats,omitempty"`
	ExchangeRates   *api.ExchangeRates   `json:"exchange_rates,omitempty"`
	Bases           *api.Bases           `json:"bases,omitempty"`
	Opportunities   *api.Opportunities   `json:"profit_opportunities,omitempty"`
	SchedulerStatus *api.SchedulerStatus `json:"scheduler_status,omitempty"`
	Errors          map[string]string    `json:"errors,omitempty"`
}

func newReport(backend string, snap engine.Snapshot, c engine.Cycle, at time.Time) report {
	r := report{
		FetchedAt:       at,
		DurationMS:      c.Duration.Milliseconds(),
		Backend:         backend,
		Health:          snap.Health,
		Stats:           snap.Stats,
		ExchangeRates:   snap.ExchangeRates,
		Bases:           snap.Bases,
		Opportunities:   snap.Opportunities,
		SchedulerStatus: snap.SchedulerStatus,
	}
	for _, res := range engine.Resources {
		if err := c.Err(res); err != nil {
			if r.Errors == nil {
				r.Errors = make(map[string]string)
			}
			r.Errors[res.String()] = err.Error()
		}
	}
	return r
}

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch every resource once and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			return opts.runSnapshot(cmd, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}

// runSnapshot performs one refresh cycle and prints it. Partial failures are
// reported inline; it only fails when no resource could be fetched.
func (o *rootOptions) runSnapshot(cmd *cobra.Command, format string) error {
	cfg, _, err := o.loadConfig()
	if err != nil {
		return err
	}
	loader := engine.NewLoader(newClient(cfg), engine.LoaderOptions{
		BasesLimit:         cfg.BasesLimit,
		OpportunitiesLimit: cfg.OpportunitiesLimit,
		Logger:             cliLogger(cmd, cfg),
	})
	cycle, err := loader.Refresh(cmd.Context())
	if err != nil {
		return err
	}
	now := time.Now()
	snap := engine.Merge(engine.Snapshot{}, cycle, now)

	out := cmd.OutOrStdout()
	rep := newReport(cfg.APIURL, snap, cycle, now)
	if err := render(out, format, rep, func() error {
		renderSnapshot(out, cfg.APIURL, snap, cycle)
		return nil
	}); err != nil {
		return err
	}
	if cycle.AllFailed() {
		return fmt.Errorf("%s: %w", cfg.APIURL, engine.ErrAllResourcesFailed)
	}
	return nil
}

func renderSnapshot(w io.Writer, backend string, snap engine.Snapshot, c engine.Cycle) {
	fmt.Fprintf(w, "poewatch %s  (%d/%d resources, %s)\n\n",
		backend, len(engine.Resources)-c.Failed(), len(engine.Resources), c.Duration.Round(time.Millisecond))

	if c.AllFailed() {
		fmt.Fprintln(w, dashboard.BannerMessage)
		fmt.Fprintln(w, "  "+dashboard.BannerRemediation)
		fmt.Fprintln(w)
	}

	if cards := dashboard.StatCards(snap.Stats); cards != nil {
		tw := newTable(w, "Stats")
		hdr := make(table.Row, len(cards))
		row := make(table.Row, len(cards))
		for i, card := range cards {
			hdr[i] = card.Label
			row[i] = card.Value
		}
		tw.AppendHeader(hdr)
		tw.AppendRow(row)
		tw.Render()
		fmt.Fprintln(w)
	}

	if snap.ExchangeRates != nil {
		rates := dashboard.RatePanel(snap.ExchangeRates)
		if !rates.Available {
			fmt.Fprintf(w, "Exchange rates: %s\n\n", rates.Message)
		} else {
			tw := newTable(w, "Exchange Rates (updated "+rates.LastUpdated+")")
			tw.AppendHeader(table.Row{"Pair", "Rate", ""})
			for _, r := range rates.Rows {
				tw.AppendRow(table.Row{r.Pair, r.Value, r.Detail})
			}
			tw.SetColumnConfigs(alignRight(2))
			tw.Render()
			fmt.Fprintln(w)
		}
	}

	if snap.Opportunities != nil {
		ranked := dashboard.RankOpportunities(snap.Opportunities)
		if len(ranked) == 0 {
			fmt.Fprintln(w, dashboard.NoOpportunitiesMessage)
			fmt.Fprintln(w)
		} else {
			tw := newTable(w, fmt.Sprintf("Top Profit Opportunities (%s)", dashboard.FormatCount(snap.Opportunities.Count)))
			tw.AppendHeader(table.Row{"#", "Risk", "Net profit", "ROI", "Base", "Craft", "Sale", "Success"})
			for _, o := range ranked {
				tw.AppendRow(table.Row{o.Rank, o.Risk.Icon() + " " + o.RiskLabel, o.NetProfit, o.ROI,
					o.BaseCost, o.CraftingCost, o.SalePrice, o.SuccessRate})
			}
			tw.SetColumnConfigs(alignRight(3, 4, 5, 6, 7, 8))
			tw.Render()
			fmt.Fprintln(w)
		}
	}

	if jobs, ok := dashboard.JobsPanel(snap.SchedulerStatus); ok {
		tw := newTable(w, "Scheduler: "+jobs.Status)
		tw.AppendHeader(table.Row{"Job", "Next run"})
		for _, j := range jobs.Rows {
			tw.AppendRow(table.Row{j.Name, j.NextRun})
		}
		tw.Render()
		fmt.Fprintln(w)
	}

	if c.Failed() > 0 {
		tw := newTable(w, "Errors")
		tw.AppendHeader(table.Row{"Resource", "Error"})
		for _, r := range engine.Resources {
			if err := c.Err(r); err != nil {
				tw.AppendRow(table.Row{r.String(), err.Error()})
			}
		}
		tw.Render()
	}
}
