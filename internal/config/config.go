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

// Feed is one configured news source.
type Feed struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Mode    string `yaml:"mode"` // "json" (conversion API) or "rss" (direct)
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	// Endpoint is the hosted feed-to-JSON conversion service. Feeds in
	// "json" mode are fetched through it, one call per feed.
	Endpoint string `yaml:"endpoint"`

	CacheTTL string `yaml:"cache_ttl"`
	PageSize int    `yaml:"page_size,omitempty"`
	Feeds    []Feed `yaml:"feeds"`
}

// CacheTTLDuration returns how long a cached aggregation stays fresh.
func (c *Config) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// GetPageSize returns the grid page size, defaulting to 9.
func (c *Config) GetPageSize() int {
	if c.PageSize <= 0 {
		return 9
	}
	return c.PageSize
}

func (c *Config) EnabledFeeds() []Feed {
	var out []Feed
	for _, f := range c.Feeds {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "ainews", "config.yaml")
}

func CachePath() string {
	return filepath.Join(xdg.CacheHome, "ainews", "ainews.db")
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

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = defaults.Endpoint
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if err := checkHTTPURL(cfg.Endpoint); err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	validModes := map[string]bool{"json": true, "rss": true}
	for i, f := range cfg.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feed %d: name is required", i)
		}
		if err := checkHTTPURL(f.URL); err != nil {
			return fmt.Errorf("feed %q: %w", f.Name, err)
		}
		if f.Mode != "" && !validModes[f.Mode] {
			return fmt.Errorf("feed %q: unknown mode %q (valid: json, rss)", f.Name, f.Mode)
		}
	}
	return nil
}

func checkHTTPURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	return nil
}
