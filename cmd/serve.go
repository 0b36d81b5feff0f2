package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/murphyqm/derelict/internal/server"
	"github.com/murphyqm/derelict/internal/site"
)

// shutdownDrain bounds how long in-flight requests may run after a signal.
const shutdownDrain = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page over HTTP",
	Long:  `Starts an HTTP server that composes and renders a fresh page for every request, with the charts and a JSON view of the content under /charts and /api.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override server port (defaults to server.port from config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	def, err := cfg.PageDefinition()
	if err != nil {
		return fmt.Errorf("building page definition: %w", err)
	}

	srv, err := server.New(server.Config{
		Addr:           cfg.Addr(),
		AllowAll:       cfg.Server.AllowAllOrigins,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	}, def)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "derelict v%s serving %q at %s\n", Version, cfg.Title, url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		site.OpenBrowser(url)
	}

	if err := srv.Run(ctx, shutdownDrain); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Server stopped.")
	return nil
}
