package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonhe/poewatch/internal/config"
	"github.com/tonhe/poewatch/tui/styles"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.configPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "show prints the config file merged with POEWATCH_* variables and flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "theme               = %s\n", cfg.Theme)
			fmt.Fprintf(out, "api_url             = %s\n", cfg.APIURL)
			fmt.Fprintf(out, "refresh_interval    = %s\n", cfg.RefreshInterval)
			fmt.Fprintf(out, "request_timeout     = %s\n", cfg.RequestTimeout)
			fmt.Fprintf(out, "bases_limit         = %d\n", cfg.BasesLimit)
			fmt.Fprintf(out, "opportunities_limit = %d\n", cfg.OpportunitiesLimit)
			fmt.Fprintf(out, "page_size           = %d\n", cfg.PageSize)
			fmt.Fprintf(out, "max_history         = %d\n", cfg.MaxHistory)
			fmt.Fprintf(out, "strict_connectivity = %t\n", cfg.StrictConnectivity)
			fmt.Fprintf(out, "log_level           = %s\n", cfg.LogLevel)
			return nil
		},
	}

	theme := &cobra.Command{
		Use:   "theme NAME",
		Short: "Set the default theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if styles.GetThemeByName(name) == nil {
				msg := fmt.Sprintf("unknown theme %q", name)
				if s := styles.SuggestTheme(name); s != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", s)
				}
				return fmt.Errorf("%s; run 'poewatch themes' to see available themes", msg)
			}
			return opts.updateFile(func(cfg *config.Config) {
				cfg.Theme = name
			}, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Default theme set to %q.\n", name)
			})
		},
	}

	apiURL := &cobra.Command{
		Use:   "api-url URL",
		Short: "Set the backend base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := strings.TrimRight(args[0], "/")
			return opts.updateFile(func(cfg *config.Config) {
				cfg.APIURL = u
			}, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Backend URL set to %q.\n", u)
			})
		},
	}

	cmd.AddCommand(path, show, theme, apiURL)
	return cmd
}

// updateFile applies fn to the config file, validates and writes it back.
// Flag and env overrides are not persisted.
func (o *rootOptions) updateFile(fn func(*config.Config), done func()) error {
	cfg, path, err := o.loadFile()
	if err != nil {
		return err
	}
	fn(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	done()
	return nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range styles.ListThemes() {
				marker := "  "
				if name == styles.DefaultThemeSlug {
					marker = "* "
				}
				fmt.Fprintln(cmd.OutOrStdout(), marker+name)
			}
		},
	}
}
