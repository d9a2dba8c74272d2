package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Environment variables that override the file values.
const (
	EnvBaseURL = "LASTMON_API_URL"
	EnvToken   = "LASTMON_API_TOKEN"
)

// APIConfig is the connection block for the monitoring API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
	Timeout string `yaml:"timeout"`
}

// Limits are the page sizes requested from the API.
type Limits struct {
	Tweets     int `yaml:"tweets"`
	News       int `yaml:"news"`
	TopQueries int `yaml:"top_queries"`
}

// LiveFilters are the configured shortcut values the live view cycles
// through for each category kind.
type LiveFilters struct {
	Sites  []string `yaml:"sites"`
	Places []string `yaml:"places"`
	People []string `yaml:"people"`
}

type Config struct {
	API             APIConfig   `yaml:"api"`
	RefreshInterval string      `yaml:"refresh_interval"`
	Limits          Limits      `yaml:"limits"`
	LiveFilters     LiveFilters `yaml:"live_filters"`
}

// RefreshDuration returns the cache staleness window.
func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// APITimeout returns the per-request timeout.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// TweetLimit returns the /tweets page size.
func (c *Config) TweetLimit() int {
	if c.Limits.Tweets <= 0 {
		return 50
	}
	return c.Limits.Tweets
}

// NewsLimit returns the /news page size.
func (c *Config) NewsLimit() int {
	if c.Limits.News <= 0 {
		return 50
	}
	return c.Limits.News
}

// TopQueryLimit returns the /stats/top-queries limit.
func (c *Config) TopQueryLimit() int {
	if c.Limits.TopQueries <= 0 {
		return 10
	}
	return c.Limits.TopQueries
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "lastmon", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file at path (default: the xdg location),
// writes the embedded defaults on first run, and applies environment
// overrides last.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err != nil && os.IsNotExist(err):
		// First run: materialize the defaults so they are editable.
		// Failure to write is non-fatal.
		writeDefaults(path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.API.Token = v
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// validate rejects malformed values. An empty base URL passes here;
// the API client reports it when a command actually needs the network.
func validate(cfg *Config) error {
	if cfg.API.BaseURL != "" {
		u, err := url.Parse(cfg.API.BaseURL)
		if err != nil {
			return fmt.Errorf("api.base_url: invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("api.base_url: scheme must be http or https, got %q", u.Scheme)
		}
	}
	if cfg.RefreshInterval != "" {
		if _, err := time.ParseDuration(cfg.RefreshInterval); err != nil {
			return fmt.Errorf("refresh_interval: %w", err)
		}
	}
	if cfg.API.Timeout != "" {
		if _, err := time.ParseDuration(cfg.API.Timeout); err != nil {
			return fmt.Errorf("api.timeout: %w", err)
		}
	}
	return nil
}
