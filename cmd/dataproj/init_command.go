package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dataproj/internal/workspace"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a project workspace with data/ and results/ subdirectories",
		Long: "Creates the base directory and its data/ and results/ subdirectories. " +
			"Running init over an existing workspace is harmless.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var w *workspace.Workspace
			var err error
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				w, err = workspace.New(args[0], workspace.WithLogger(ctx.logger()))
			} else {
				w, err = ctx.workspace()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workspace %q ready\n", w.Name)
			fmt.Fprintf(out, "  %s\n  %s\n  %s\n", w.Dir, w.DataDir, w.ResultsDir)
			return nil
		},
	}
}
