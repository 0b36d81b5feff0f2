package config

import (
	"github.com/murphyqm/derelict/internal/chart"
	"github.com/murphyqm/derelict/internal/page"
)

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".derelict.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	style := chart.DefaultStyle()
	return &Config{
		Title:     "How to avoid DeReLiCT Code",
		Tagline:   "Basic steps to help avoid total code collapse.",
		OutputDir: "site",
		Server: ServerConfig{
			Host:           "",
			Port:           8501,
			RequestTimeout: 30,
		},
		Charts: ChartsConfig{
			Scheme:       style.Scheme,
			BarSize:      style.BarSize,
			Step:         style.Step,
			CornerRadius: style.CornerRadius,
			Width:        style.Width,
			ShowTools:    false,
		},
	}
}

// ChartStyle returns the chart style described by the config.
func (c *Config) ChartStyle() chart.Style {
	style := chart.DefaultStyle()
	style.Scheme = c.Charts.Scheme
	style.BarSize = c.Charts.BarSize
	style.Step = c.Charts.Step
	style.CornerRadius = c.Charts.CornerRadius
	style.Width = c.Charts.Width
	return style
}

// PageDefinition builds the page definition the composer renders from.
func (c *Config) PageDefinition() (page.Definition, error) {
	def, err := page.DefaultDefinition()
	if err != nil {
		return page.Definition{}, err
	}
	if c.Title != "" {
		def.Title = c.Title
	}
	if c.Tagline != "" {
		def.Tagline = c.Tagline
	}
	def.Style = c.ChartStyle()
	def.ShowToolsChart = c.Charts.ShowTools
	return def, nil
}
