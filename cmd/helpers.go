package cmd

import (
	"fmt"
	"os"

	"github.com/murphyqm/derelict/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `derelict init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Config: %s (scheme=%s, tools chart=%v)\n", cfgFile, cfg.Charts.Scheme, cfg.Charts.ShowTools)
	}
	return cfg, nil
}
