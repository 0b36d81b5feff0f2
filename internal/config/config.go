package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/murphyqm/derelict/internal/chart"
)

// EnvPrefix is the prefix of environment variables that override config values.
const EnvPrefix = "DERELICT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DERELICT_*). A double underscore
// separates nested keys: DERELICT_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout_seconds must be non-negative")
	}

	if !chart.HasScheme(c.Charts.Scheme) {
		return fmt.Errorf("invalid charts.scheme %q: must be one of %s", c.Charts.Scheme, strings.Join(chart.Schemes(), ", "))
	}

	if c.Charts.BarSize <= 0 {
		return fmt.Errorf("charts.bar_size must be positive")
	}

	if c.Charts.Step < c.Charts.BarSize {
		return fmt.Errorf("charts.step (%d) must be at least charts.bar_size (%d)", c.Charts.Step, c.Charts.BarSize)
	}

	if c.Charts.CornerRadius < 0 {
		return fmt.Errorf("charts.corner_radius must be non-negative")
	}

	if c.Charts.Width < 400 {
		return fmt.Errorf("charts.width must be at least 400")
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
