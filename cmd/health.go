package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tonhe/poewatch/internal/api"
	"github.com/tonhe/poewatch/internal/dashboard"
)

type healthReport struct {
	Backend string      `json:"backend"`
	Health  *api.Health `json:"health"`
	Info    *api.Info   `json:"info"`
}

func newHealthCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		Long:  "health calls /health and / on the backend. It exits non-zero when either call fails.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			client := newClient(cfg)
			health, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			info, err := client.Info(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rep := healthReport{Backend: cfg.APIURL, Health: health, Info: info}
			return render(out, format, rep, func() error {
				tw := newTable(out, "")
				tw.AppendRows([]table.Row{
					{"Backend", cfg.APIURL},
					{"Status", health.Status},
					{"Database", health.Database},
					{"Scheduler", health.Scheduler},
					{"Version", info.Version},
					{"Scheduler jobs", info.SchedulerJobs},
					{"Server time", dashboard.FormatTimestamp(health.Timestamp)},
				})
				tw.Render()
				if info.Message != "" {
					fmt.Fprintln(out, info.Message)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}
