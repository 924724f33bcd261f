// Package main provides the modelgen CLI. modelgen reads a live database
// schema and writes Laravel Eloquent model classes, one per table.
//
// Usage:
//
//	modelgen generate                    # Write app/Models/*.php for every table
//	modelgen generate --tables users     # Only the named tables
//	modelgen generate --relationships    # Infer relation methods from foreign keys
//	modelgen generate --force            # Patch existing models in place
//	modelgen tables                      # List the tables that get a model
//	modelgen inspect <table>             # Show the model derived for one table
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hlop3z/modelgen/internal/ui"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	configFile  string
	databaseURL string
	dialectName string
	envFile     string
	verbose     bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modelgen",
		Short: "Generate Laravel Eloquent models from a database schema",
		Long: `modelgen inspects a MySQL, PostgreSQL or SQLite database and writes one Eloquent
model class per table, with fillable columns, casts and inferred relationships.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", DefaultConfigFile, "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&databaseURL, "database-url", "d", "", "Database connection URL")
	rootCmd.PersistentFlags().StringVar(&dialectName, "dialect", "", "Database dialect (mysql, postgres, sqlite)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", DefaultEnvFile, "Laravel .env file with DB_* settings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		generateCmd(),
		tablesCmd(),
		inspectCmd(),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !handleClientError(err) {
			fmt.Fprint(os.Stderr, ui.FormatError(err))
		}
		stop()
		os.Exit(1)
	}
}
