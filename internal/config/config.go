package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultAPIURL is the backend address used when nothing else is configured.
const DefaultAPIURL = "http://localhost:8001"

type Config struct {
	Theme              string        `toml:"theme"`
	APIURL             string        `toml:"api_url"`
	RefreshInterval    time.Duration `toml:"-"`
	RefreshIntervalStr string        `toml:"refresh_interval"`
	RequestTimeout     time.Duration `toml:"-"`
	RequestTimeoutStr  string        `toml:"request_timeout"`
	BasesLimit         int           `toml:"bases_limit"`
	OpportunitiesLimit int           `toml:"opportunities_limit"`
	PageSize           int           `toml:"page_size"`
	MaxHistory         int           `toml:"max_history"`
	StrictConnectivity bool          `toml:"strict_connectivity"`
	LogLevel           string        `toml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:              "solarized-dark",
		APIURL:             DefaultAPIURL,
		RefreshInterval:    30 * time.Second,
		RefreshIntervalStr: "30s",
		RequestTimeout:     10 * time.Second,
		RequestTimeoutStr:  "10s",
		BasesLimit:         500,
		OpportunitiesLimit: 10,
		PageSize:           20,
		MaxHistory:         120,
		LogLevel:           "info",
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.RefreshIntervalStr != "" {
		d, err := time.ParseDuration(cfg.RefreshIntervalStr)
		if err != nil {
			return nil, fmt.Errorf("refresh_interval: %w", err)
		}
		cfg.RefreshInterval = d
	}
	if cfg.RequestTimeoutStr != "" {
		d, err := time.ParseDuration(cfg.RequestTimeoutStr)
		if err != nil {
			return nil, fmt.Errorf("request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	cfg.RefreshIntervalStr = cfg.RefreshInterval.String()
	cfg.RequestTimeoutStr = cfg.RequestTimeout.String()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Validate reports the first setting that would make the dashboard unusable.
func (c *Config) Validate() error {
	if c.RefreshInterval <= 0 {
		return errors.New("refresh_interval must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url %q: missing host", c.APIURL)
	}
	if c.BasesLimit <= 0 || c.OpportunitiesLimit <= 0 {
		return errors.New("bases_limit and opportunities_limit must be positive")
	}
	return nil
}
