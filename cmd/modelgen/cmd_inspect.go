package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hlop3z/modelgen/internal/ui"
)

// inspectCmd prints the model derived for one table without writing it.
func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect <table>",
		Short:   "Show the model derived for a table",
		Args:    cobra.ExactArgs(1),
		Example: `  modelgen inspect users --relationships`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			m, warnings, err := client.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, ui.ModelReport(m, client.ModelPath(m.ClassName)))
			for _, w := range warnings {
				fmt.Fprintln(out, ui.FormatWarning(w))
			}
			return nil
		},
	}

	cmd.Flags().Bool("relationships", false, FlagDescRelationships)
	return cmd
}
