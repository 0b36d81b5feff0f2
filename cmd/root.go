package cmd

import (
	"github.com/spf13/cobra"

	"github.com/murphyqm/derelict/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "derelict",
	Short: "Serve and export the DeReLiCT research code guide",
	Long: `Derelict renders "How to avoid DeReLiCT Code", a single-page guide to
Dependencies, Repositories, Licences, Citation and Testing for research
software, with survey charts. It can serve the page, export it as a
static site, or preview the charts in the terminal.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
