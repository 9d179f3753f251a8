package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tonhe/poewatch/internal/api"
	"github.com/tonhe/poewatch/internal/dashboard"
)

// newCatalogCmd lists the reference data the backend collects. The
// dashboard does not show it.
func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List leagues, currencies or modifiers known to the backend",
	}
	cmd.PersistentFlags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")

	leagues := &cobra.Command{
		Use:   "leagues",
		Short: "List leagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			res, err := newClient(cfg).Leagues(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return render(out, format, res, func() error {
				tw := newTable(out, "Leagues ("+dashboard.FormatCount(res.Count)+")")
				tw.AppendHeader(table.Row{"ID", "Name", "Realm", "Type", "Active"})
				for _, l := range res.Leagues {
					active := ""
					if l.IsActive {
						active = "yes"
					}
					tw.AppendRow(table.Row{l.ID, l.Name, l.Realm, l.Type, active})
				}
				tw.Render()
				return nil
			})
		},
	}

	currencies := &cobra.Command{
		Use:   "currencies",
		Short: "List currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			res, err := newClient(cfg).Currencies(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return render(out, format, res, func() error {
				tw := newTable(out, "Currencies ("+dashboard.FormatCount(res.Count)+")")
				tw.AppendHeader(table.Row{"ID", "Name", "Korean name", "Type", "Rarity"})
				for _, c := range res.Currencies {
					tw.AppendRow(table.Row{c.ID, c.Name, c.NameKR, c.Type, c.Rarity})
				}
				tw.Render()
				return nil
			})
		},
	}

	var limit int
	modifiers := &cobra.Command{
		Use:   "modifiers",
		Short: "List item modifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			res, err := newClient(cfg).Modifiers(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return render(out, format, res, func() error {
				tw := newTable(out, "Modifiers ("+dashboard.FormatCount(res.Count)+")")
				tw.AppendHeader(table.Row{"ID", "Name", "Display name", "Affix"})
				for _, m := range res.Modifiers {
					affix := "suffix"
					if m.IsPrefix {
						affix = "prefix"
					}
					tw.AppendRow(table.Row{m.ID, m.Name, m.DisplayName, affix})
				}
				tw.Render()
				return nil
			})
		},
	}
	modifiers.Flags().IntVarP(&limit, "limit", "n", api.DefaultModifiersLimit, "maximum rows to fetch")

	cmd.AddCommand(leagues, currencies, modifiers)
	return cmd
}
