package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "solarized-dark" {
		t.Errorf("expected default theme 'solarized-dark', got %q", cfg.Theme)
	}
	if cfg.APIURL != "http://localhost:8001" {
		t.Errorf("expected default api url, got %q", cfg.APIURL)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("expected refresh interval 30s, got %v", cfg.RefreshInterval)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected request timeout 10s, got %v", cfg.RequestTimeout)
	}
	if cfg.BasesLimit != 500 || cfg.OpportunitiesLimit != 10 {
		t.Errorf("unexpected limits: bases=%d opportunities=%d", cfg.BasesLimit, cfg.OpportunitiesLimit)
	}
	if cfg.PageSize != 20 {
		t.Errorf("expected page size 20, got %d", cfg.PageSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigSaveLoad(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	cfg := DefaultConfig()
	cfg.Theme = "dracula"
	cfg.APIURL = "http://10.0.0.5:9000"
	cfg.RefreshInterval = 45 * time.Second
	cfg.StrictConnectivity = true

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.Theme != "dracula" {
		t.Errorf("expected theme 'dracula', got %q", loaded.Theme)
	}
	if loaded.APIURL != "http://10.0.0.5:9000" {
		t.Errorf("expected api url to round-trip, got %q", loaded.APIURL)
	}
	if loaded.RefreshInterval != 45*time.Second {
		t.Errorf("expected interval 45s, got %v", loaded.RefreshInterval)
	}
	if !loaded.StrictConnectivity {
		t.Error("expected strict_connectivity to round-trip")
	}
}

func TestConfigLoadMissing(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadConfig() should return defaults for missing file, got error: %v", err)
	}
	if cfg.Theme != "solarized-dark" {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
}

func TestConfigLoadBadInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte(`refresh_interval = "soon"`), 0644)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unparseable refresh_interval")
	}
}

func TestConfigLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("api_url = \"http://example.com:8001\"\npage_size = 50\n"), 0644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.PageSize)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("missing keys should keep defaults, got interval %v", cfg.RefreshInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.RefreshInterval = 0 }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
		{"bad scheme", func(c *Config) { c.APIURL = "ftp://localhost:8001" }},
		{"missing host", func(c *Config) { c.APIURL = "http://" }},
		{"zero limit", func(c *Config) { c.BasesLimit = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
