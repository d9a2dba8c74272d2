package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.RefreshInterval == "" {
		t.Error("expected refresh_interval to be set")
	}
	if cfg.API.Timeout == "" {
		t.Error("expected api.timeout to be set")
	}
}

func TestRefreshDuration(t *testing.T) {
	cfg := &Config{RefreshInterval: "30s"}
	if d := cfg.RefreshDuration(); d != 30*time.Second {
		t.Errorf("expected 30s, got %v", d)
	}

	cfg.RefreshInterval = "invalid"
	if d := cfg.RefreshDuration(); d != time.Minute {
		t.Errorf("expected 1m default for invalid interval, got %v", d)
	}
}

func TestLimitsDefaults(t *testing.T) {
	cfg := &Config{}
	if cfg.TweetLimit() != 50 {
		t.Errorf("TweetLimit default = %d, want 50", cfg.TweetLimit())
	}
	if cfg.NewsLimit() != 50 {
		t.Errorf("NewsLimit default = %d, want 50", cfg.NewsLimit())
	}
	if cfg.TopQueryLimit() != 10 {
		t.Errorf("TopQueryLimit default = %d, want 10", cfg.TopQueryLimit())
	}

	cfg.Limits = Limits{Tweets: 5, News: 6, TopQueries: 7}
	if cfg.TweetLimit() != 5 || cfg.NewsLimit() != 6 || cfg.TopQueryLimit() != 7 {
		t.Error("configured limits must win over defaults")
	}
}

func TestLoadUserConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api:
  base_url: "https://api.example.com"
  token: "tkn"
refresh_interval: 2m
live_filters:
  sites: ["example.com"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Token != "tkn" {
		t.Errorf("token = %q", cfg.API.Token)
	}
	if cfg.RefreshDuration() != 2*time.Minute {
		t.Errorf("refresh = %v", cfg.RefreshDuration())
	}
	if len(cfg.LiveFilters.Sites) != 1 || cfg.LiveFilters.Sites[0] != "example.com" {
		t.Errorf("live_filters.sites = %v", cfg.LiveFilters.Sites)
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api:
  base_url: "https://file.example.com"
  token: "file-token"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvBaseURL, "https://env.example.com")
	t.Setenv(EnvToken, "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("env base URL must win, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Token != "env-token" {
		t.Errorf("env token must win, got %q", cfg.API.Token)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad scheme", Config{API: APIConfig{BaseURL: "ftp://x"}}},
		{"bad refresh", Config{RefreshInterval: "soon"}},
		{"bad timeout", Config{API: APIConfig{Timeout: "later"}}},
	}
	for _, tt := range tests {
		if err := validate(&tt.cfg); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestValidateAllowsEmptyBaseURL(t *testing.T) {
	// Missing base URL surfaces when a command needs the network, not
	// at config load.
	if err := validate(&Config{}); err != nil {
		t.Errorf("empty config must validate: %v", err)
	}
}
