// Package config loads persistent defaults for the pagefold CLI and web
// front end from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pagefold/pagefold/types"
)

// Config holds the user-tunable defaults. Command-line flags take
// precedence over file values, which take precedence over Default.
type Config struct {
	Style          string `yaml:"style"`
	PullQuotes     int    `yaml:"pull_quotes"`
	Images         bool   `yaml:"images"`
	DropCap        bool   `yaml:"drop_cap"`
	HeaderFooter   bool   `yaml:"header_footer"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Listen         string `yaml:"listen"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Style:          string(types.StyleMagazine),
		PullQuotes:     3,
		Images:         true,
		DropCap:        true,
		HeaderFooter:   true,
		TimeoutSeconds: 30,
		Listen:         ":8080",
	}
}

// Load reads the configuration file at path, layering it over the
// defaults. A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	layout := cfg.LayoutOptions()
	if err := layout.Normalize(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Style = string(layout.Style)
	return cfg, nil
}

// Timeout returns the fetch timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LayoutOptions translates the configuration into layout options.
func (c Config) LayoutOptions() types.LayoutOptions {
	return types.LayoutOptions{
		Style:               types.Style(c.Style),
		IncludeImages:       c.Images,
		IncludePullQuotes:   c.PullQuotes > 0,
		IncludeDropCap:      c.DropCap,
		IncludeHeaderFooter: c.HeaderFooter,
	}
}
