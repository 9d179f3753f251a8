package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tonhe/poewatch/internal/api"
	"github.com/tonhe/poewatch/internal/dashboard"
)

// basesPage is the machine-readable form of one projected page.
type basesPage struct {
	Search     string         `json:"search,omitempty"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
	Items      []api.BaseItem `json:"items"`
	Suggestion string         `json:"suggestion,omitempty"`
}

func newBasesCmd(opts *rootOptions) *cobra.Command {
	var (
		search   string
		page     int
		pageSize int
		format   string
	)
	cmd := &cobra.Command{
		Use:   "bases",
		Short: "List base items, filtered and paged like the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if pageSize <= 0 {
				pageSize = cfg.PageSize
			}

			bases, err := newClient(cfg).Bases(cmd.Context(), cfg.BasesLimit)
			if err != nil {
				return err
			}

			vs := dashboard.ViewState{SearchTerm: search, CurrentPage: page}
			p := dashboard.Project(bases.Bases, vs, pageSize)

			doc := basesPage{
				Search:     search,
				Page:       p.Page,
				TotalPages: p.TotalPages,
				Total:      p.TotalFiltered,
				Items:      p.Items,
				Suggestion: p.Suggestion,
			}

			out := cmd.OutOrStdout()
			return render(out, format, doc, func() error {
				if p.TotalFiltered == 0 {
					if search == "" {
						fmt.Fprintln(out, "No base items.")
					} else {
						fmt.Fprintf(out, "No base items match %q.\n", search)
					}
					if p.Suggestion != "" {
						fmt.Fprintf(out, "Did you mean %q?\n", p.Suggestion)
					}
					return nil
				}
				tw := newTable(out, "")
				tw.AppendHeader(table.Row{"ID", "Name", "Level"})
				for _, b := range p.Items {
					tw.AppendRow(table.Row{b.ID, b.Name, dashboard.FormatLevel(b.RequiredLevel)})
				}
				tw.SetColumnConfigs(alignRight(1, 3))
				tw.Render()
				fmt.Fprintf(out, "%s  page %d/%d\n", p.Range(), p.Page, max(1, p.TotalPages))
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&search, "search", "s", "", "case-insensitive name filter")
	f.IntVarP(&page, "page", "p", 1, "page number, clamped to the last page")
	f.IntVar(&pageSize, "page-size", 0, "rows per page (default from config)")
	f.StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}
