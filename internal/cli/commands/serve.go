package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gridironlabs/keeper/internal/ui"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port    int
	NoWatch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the keeper analysis web UI",
		Long: `Start a local web server with the keeper analysis table.

The UI provides:
- Sortable, manager-filterable analysis table
- JSON API under /api
- Live reload when the data files change`,
		Example: `  # Start on the default port
  keeper serve

  # Start on a custom port
  keeper serve --port 3000

  # Disable the data file watcher
  keeper serve --no-watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 5001)")
	cmd.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "Don't watch data files for changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	port := cfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	watch := cfg.Watch
	if opts.NoWatch {
		watch = false
	}

	server := ui.NewServer(ui.Config{
		Source:        cmdCtx.Source,
		Port:          port,
		Watch:         watch,
		DataDir:       cfg.DataDir,
		SessionSecret: cfg.SessionSecret,
		Logger:        cmdCtx.Logger,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Starting server on http://localhost:%d\n", port)
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}
