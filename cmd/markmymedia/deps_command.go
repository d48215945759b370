package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"markmymedia/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			rows := make([][]string, 0, len(statuses))
			allOK := true
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					allOK = false
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Tool", "Command", "Status", "Detail"}, rows))
			if !allOK {
				return fmt.Errorf("one or more required tools are missing")
			}
			return nil
		},
	}
}
