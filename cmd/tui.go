package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonhe/poewatch/internal/config"
	"github.com/tonhe/poewatch/internal/engine"
	"github.com/tonhe/poewatch/internal/logging"
	"github.com/tonhe/poewatch/tui"
	"github.com/tonhe/poewatch/tui/styles"
)

// runTUI starts the dashboard. The terminal belongs to the UI, so logs go to
// a file in the data directory.
func (o *rootOptions) runTUI() error {
	cfg, path, err := o.loadConfig()
	if err != nil {
		return err
	}
	if err := config.EnsureDirs(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	logPath, err := config.GetLogPath()
	if err != nil {
		return err
	}
	log, closer, err := logging.OpenFile(cfg.LogLevel, logPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	if _, ok := styles.Resolve(cfg.Theme); !ok {
		log.Warn("unknown theme, using default", "theme", cfg.Theme, "default", styles.DefaultThemeSlug)
	}
	log.Info("starting dashboard", "backend", cfg.APIURL, "interval", cfg.RefreshInterval, "version", Version)

	loader := engine.NewLoader(newClient(cfg), engine.LoaderOptions{
		BasesLimit:         cfg.BasesLimit,
		OpportunitiesLimit: cfg.OpportunitiesLimit,
		Logger:             log,
	})
	sched := engine.NewScheduler(loader, engine.Options{
		Interval:           cfg.RefreshInterval,
		StrictConnectivity: cfg.StrictConnectivity,
		MaxHistory:         cfg.MaxHistory,
		Logger:             log,
	})
	defer sched.Stop()

	p := tea.NewProgram(tui.NewAppModel(cfg, path, sched, Version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
