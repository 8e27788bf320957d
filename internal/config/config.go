package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_SERVER__ADDR
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Site        SiteConfig        `koanf:"site"`
	Catalog     CatalogConfig     `koanf:"catalog"`
	Highlight   HighlightConfig   `koanf:"highlight"`
	Session     SessionConfig     `koanf:"session"`
	Transitions TransitionsConfig `koanf:"transitions"`
}

// ServerConfig holds HTTP settings
type ServerConfig struct {
	Addr           string   `koanf:"addr"`
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// SiteConfig holds what the page says about its owner
type SiteConfig struct {
	Title   string   `koanf:"title"`
	Owner   string   `koanf:"owner"`
	Tagline string   `koanf:"tagline"`
	Filters []string `koanf:"filters"`
}

// CatalogConfig points at an optional YAML catalog; empty uses the built-in data
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// HighlightConfig selects the chroma style
type HighlightConfig struct {
	Style string `koanf:"style"`
}

// SessionConfig bounds the per-visitor page cache
type SessionConfig struct {
	Size int           `koanf:"size"`
	TTL  time.Duration `koanf:"ttl"`
}

// TransitionsConfig holds the card fade delays
type TransitionsConfig struct {
	HideDelay time.Duration `koanf:"hide_delay"`
	ShowDelay time.Duration `koanf:"show_delay"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Site: SiteConfig{
			Title:   "Felix: Python developer and analyst",
			Owner:   "Felix",
			Tagline: "I turn complex problems into working software",
		},
		Highlight: HighlightConfig{Style: "github"},
		Session: SessionConfig{
			Size: 1024,
			TTL:  30 * time.Minute,
		},
		Transitions: TransitionsConfig{
			HideDelay: 300 * time.Millisecond,
			ShowDelay: 10 * time.Millisecond,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PORTFOLIO_SERVER__ADDR -> server.addr
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Session.Size < 0 {
		errs = append(errs, errors.New("session.size must be non-negative"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if c.Transitions.HideDelay < 0 || c.Transitions.ShowDelay < 0 {
		errs = append(errs, errors.New("transition delays must be non-negative"))
	}
	for _, f := range c.Site.Filters {
		if strings.TrimSpace(f) == "" || f == "all" {
			errs = append(errs, fmt.Errorf("invalid site.filters entry %q", f))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
