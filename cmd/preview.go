package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murphyqm/derelict/internal/chart"
	"github.com/murphyqm/derelict/internal/page"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw the survey charts in the terminal",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Int("width", 80, "chart width in columns")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetInt("width")

	def, err := cfg.PageDefinition()
	if err != nil {
		return fmt.Errorf("building page definition: %w", err)
	}
	p, err := page.Build(def)
	if err != nil {
		return fmt.Errorf("composing page: %w", err)
	}

	for i, d := range p.Charts {
		out, err := chart.Terminal(d, width)
		if err != nil {
			return fmt.Errorf("drawing %s: %w", d.ID, err)
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(out)
	}
	return nil
}
