package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hlop3z/modelgen/internal/ui"
	"github.com/hlop3z/modelgen/pkg/modelgen"
)

// generateCmd writes or patches the model files.
func generateCmd() *cobra.Command {
	var (
		tables tableList
		dryRun bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate Eloquent models from the database schema",
		Example: `  modelgen generate
  modelgen generate --tables users,posts --relationships
  modelgen generate --force --path app/Models --namespace 'App\Models'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if watch {
				cfg.Force = true
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			opts := []modelgen.GenerateOption{modelgen.Tables(tables...)}
			if dryRun {
				opts = append(opts, modelgen.DryRun())
			}

			run := func(ctx context.Context) error {
				return runGenerate(ctx, cmd.OutOrStdout(), client, dryRun, opts...)
			}

			if !watch {
				return run(cmd.Context())
			}

			file, ok := client.DatabaseFile()
			if !ok {
				return fmt.Errorf("--watch needs a SQLite database, got %s", client.Dialect())
			}
			if err := run(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info(fmt.Sprintf(MsgWatching, file)))
			return watchDatabase(cmd.Context(), file, WatchDebounce, run)
		},
	}

	cmd.Flags().Var(&tables, "tables", FlagDescTables)
	cmd.Flags().String("path", "", FlagDescPath)
	cmd.Flags().String("namespace", "", FlagDescNamespace)
	cmd.Flags().Bool("relationships", false, FlagDescRelationships)
	cmd.Flags().Bool("force", false, FlagDescForce)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, FlagDescDryRun)
	cmd.Flags().BoolVar(&watch, "watch", false, FlagDescWatch)

	return cmd
}

// runGenerate runs one generation pass and prints a line per table followed
// by the summary.
func runGenerate(ctx context.Context, w io.Writer, client *modelgen.Client, dryRun bool, opts ...modelgen.GenerateOption) error {
	opts = append(opts, modelgen.OnResult(func(r modelgen.TableResult) {
		fmt.Fprintln(w, ui.StatusLine(r))
	}))

	summary, err := client.Generate(ctx, opts...)
	if summary != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.SummaryPanel(summary))
		if dryRun {
			fmt.Fprintln(w, ui.RenderWarningPanel(TitleDryRun, MsgDryRun))
		}
	}
	return err
}
