// Package cli provides the command-line interface for zest.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zest-labs/zest/internal/cli/commands"
	"github.com/zest-labs/zest/internal/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version = "0.1.0"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zest",
		Short: "Zest - Restaurant Analytics Dashboard",
		Long: `Zest serves an interactive dashboard over a restaurant dataset.

It loads a Parquet dataset (CSV fallback), applies a location filter, and
renders KPIs, distributions, correlations, and cost hierarchies across four
analysis views.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if file := config.FileUsed(); file != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", file)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Restaurant analytics built with Go and DuckDB
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./zest.yaml)")
	rootCmd.PersistentFlags().String("parquet", "", "Path to the Parquet dataset")
	rootCmd.PersistentFlags().String("csv", "", "Path to the CSV fallback dataset")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json)")

	// Subcommands
	rootCmd.AddCommand(commands.NewServeCommand(getConfig, getLogger))
	rootCmd.AddCommand(commands.NewSummaryCommand(getConfig, getLogger))
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Dataset: config.DatasetConfig{
			ParquetPath: config.DefaultParquetPath,
			CSVPath:     config.DefaultCSVPath,
		},
		UI:     config.UIConfig{Port: config.DefaultPort, PreviewLimit: config.DefaultPreviewLimit},
		Output: config.DefaultOutput,
	}
}

func getLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
