package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/murphyqm/derelict/internal/page"
	"github.com/murphyqm/derelict/internal/progress"
	"github.com/murphyqm/derelict/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the page as a static website",
	Long:  `Renders the page once and writes index.html, its stylesheet and script, one SVG per chart and page.json to the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after exporting")
	buildCmd.Flags().Int("port", 8080, "port for the local file server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	def, err := cfg.PageDefinition()
	if err != nil {
		return fmt.Errorf("building page definition: %w", err)
	}
	p, err := page.Build(def)
	if err != nil {
		return fmt.Errorf("composing page: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Composed page %s: %d sections, %d charts\n", p.RenderID, len(p.Sections), len(p.Charts))
	}

	generator := site.NewGenerator(outputDir, progress.NewReporter())
	n, err := generator.Generate(p)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d files)\n", outputDir, n)

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")
		return site.Serve(outputDir, port, open)
	}
	return nil
}
