package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hlop3z/modelgen/internal/ui"
	"github.com/hlop3z/modelgen/pkg/modelgen"
)

func tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables that get a model",
		Args:  cobra.NoArgs,
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

			tables, err := client.Tables(cmd.Context())
			if err != nil {
				return err
			}
			if len(tables) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warning(MsgNoTables))
				return nil
			}

			classes := make([]string, len(tables))
			for i, t := range tables {
				classes[i] = modelgen.ClassName(t)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.TableList(tables, classes))
			return nil
		},
	}
}
