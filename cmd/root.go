package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tonhe/poewatch/internal/api"
	"github.com/tonhe/poewatch/internal/config"
	"github.com/tonhe/poewatch/internal/logging"
)

// Version is stamped at build time with
// -ldflags "-X github.com/tonhe/poewatch/cmd.Version=...".
var Version = "0.1.0"

// overridable settings, bound to flags and POEWATCH_* variables
var overrideKeys = []string{"api-url", "theme", "interval", "log-level"}

type rootOptions struct {
	v       *viper.Viper
	cfgFile string
	isTTY   func() bool
}

// NewRootCmd builds the poewatch command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
}

func newRootCmd(isTTY func() bool) *cobra.Command {
	opts := &rootOptions{v: viper.New(), isTTY: isTTY}

	root := &cobra.Command{
		Use:           "poewatch",
		Short:         "Terminal dashboard for the PoE2 crafting profit backend",
		Long:          "poewatch polls the crafting profit backend and shows stats, exchange rates,\nbase items and the top profit opportunities. Without a subcommand it starts\nthe dashboard, or prints one snapshot when stdout is not a terminal.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.isTTY() {
				return opts.runTUI()
			}
			return opts.runSnapshot(cmd, formatTable)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default <config dir>/poewatch/config.toml)")
	pf.String("api-url", "", "backend base URL (env POEWATCH_API_URL)")
	pf.String("theme", "", "color theme (env POEWATCH_THEME)")
	pf.Duration("interval", 0, "automatic refresh interval (env POEWATCH_INTERVAL)")
	pf.String("log-level", "", "debug, info, warn or error (env POEWATCH_LOG_LEVEL)")
	for _, name := range overrideKeys {
		_ = opts.v.BindPFlag(name, pf.Lookup(name))
	}
	opts.v.SetEnvPrefix("POEWATCH")
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()

	root.AddCommand(
		newSnapshotCmd(opts),
		newBasesCmd(opts),
		newHealthCmd(opts),
		newCatalogCmd(opts),
		newConfigCmd(opts),
		newThemesCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (o *rootOptions) configPath() (string, error) {
	if o.cfgFile != "" {
		return o.cfgFile, nil
	}
	return config.GetConfigPath()
}

// loadFile reads the config file alone, without flag or env overrides.
func (o *rootOptions) loadFile() (*config.Config, string, error) {
	path, err := o.configPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// loadConfig layers the config file, POEWATCH_* variables and flags, in
// increasing precedence.
func (o *rootOptions) loadConfig() (*config.Config, string, error) {
	cfg, path, err := o.loadFile()
	if err != nil {
		return nil, "", err
	}
	if o.v.IsSet("api-url") {
		cfg.APIURL = o.v.GetString("api-url")
	}
	if o.v.IsSet("theme") {
		cfg.Theme = o.v.GetString("theme")
	}
	if o.v.IsSet("interval") {
		cfg.RefreshInterval = o.v.GetDuration("interval")
	}
	if o.v.IsSet("log-level") {
		cfg.LogLevel = o.v.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("config: %w", err)
	}
	return cfg, path, nil
}

// cliLogger logs to the command's stderr.
func cliLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.New(cfg.LogLevel, cmd.ErrOrStderr())
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.APIURL, cfg.RequestTimeout)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "poewatch v%s\n", Version)
		},
	}
}
