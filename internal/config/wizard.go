package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/murphyqm/derelict/internal/chart"
)

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to derelict! Let's configure your page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Page title.
	titlePrompt := promptui.Prompt{
		Label:    "Page title",
		Default:  cfg.Title,
		Validate: notBlank,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = strings.TrimSpace(title)

	// 2. Port for `derelict serve`.
	portPrompt := promptui.Prompt{
		Label:    "Port for the local server",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 3. Output directory for `derelict build`.
	outputPrompt := promptui.Prompt{
		Label:    "Output directory for the static site",
		Default:  cfg.OutputDir,
		Validate: notBlank,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	// 4. Colour scheme.
	schemes := chart.Schemes()
	schemePrompt := promptui.Select{
		Label: "Bar colour scheme",
		Items: schemes,
	}
	_, scheme, err := schemePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("scheme selection: %w", err)
	}
	cfg.Charts.Scheme = scheme

	// 5. Second survey chart.
	toolsPrompt := promptui.Select{
		Label: "Show the dependency management tools chart",
		Items: []string{"no", "yes"},
	}
	toolsIdx, _, err := toolsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("tools chart selection: %w", err)
	}
	cfg.Charts.ShowTools = toolsIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
