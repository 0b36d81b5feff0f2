package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murphyqm/derelict/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a derelict configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the page title, server port, export directory and chart options, and writes the result to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (port %d, output %s)\n", cfgFile, cfg.Server.Port, cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
