// Package commands implements the zest subcommands.
package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zest-labs/zest/internal/config"
	"github.com/zest-labs/zest/internal/dataset"
	"github.com/zest-labs/zest/internal/ui"
)

// ConfigFn retrieves the loaded config from the command context.
type ConfigFn func(context.Context) *config.Config

// LoggerFn retrieves the logger from the command context.
type LoggerFn func(context.Context) *slog.Logger

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port int
}

// NewServeCommand creates the serve command.
func NewServeCommand(getConfig ConfigFn, getLogger LoggerFn) *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		Long: `Start a local web server providing the interactive dashboard.

The dashboard provides:
- Home: KPIs and a filtered data preview
- Univariate: per-column distribution and stats
- Bivariate: cost/rating scatter, top locations, booking effect
- Multivariate: correlation heatmap and cost treemap`,
		Example: `  # Start on the configured port
  zest serve

  # Start on a custom port without watching the dataset file
  zest serve --port 3000 --watch=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, getConfig, getLogger, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().Bool("watch", true, "Reload when the dataset file changes")

	return cmd
}

func runServe(cmd *cobra.Command, getConfig ConfigFn, getLogger LoggerFn, opts *ServeOptions) error {
	cfg := getConfig(cmd.Context())
	logger := getLogger(cmd.Context())

	port := cfg.UI.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	watch := cfg.UI.Watch
	if cmd.Flags().Changed("watch") {
		watch, _ = cmd.Flags().GetBool("watch")
	}

	secret := cfg.UI.SessionSecret
	if secret == "" {
		secret = randomSecret()
	}

	src := dataset.Source{
		ParquetPath: cfg.Dataset.ParquetPath,
		CSVPath:     cfg.Dataset.CSVPath,
	}
	store := dataset.NewStore(src, logger)

	// Load eagerly so a bad dataset path fails at startup, not on the
	// first page view.
	if _, err := store.Get(cmd.Context()); err != nil {
		return err
	}

	server := ui.NewServer(ui.Config{
		Store:         store,
		Source:        src,
		Port:          port,
		Watch:         watch,
		PreviewLimit:  cfg.UI.PreviewLimit,
		SessionSecret: secret,
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

// randomSecret generates an ephemeral session secret. Sessions then expire
// with the process, which is fine: nothing in them must survive a restart.
func randomSecret() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
