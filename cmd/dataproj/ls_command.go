package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"dataproj/internal/workspace"
)

func newLsCommand(ctx *commandContext) *cobra.Command {
	var pattern string
	var regex string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "ls [subdir]",
		Short: "List files in a workspace subdirectory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := ctx.workspace()
			if err != nil {
				return err
			}

			subdir := ""
			if len(args) == 1 {
				subdir = args[0]
			}
			subdir = ctx.subdirOrDefault(subdir)

			paths, err := w.Files(subdir, workspace.ListOptions{Pattern: pattern, Regex: regex})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, paths)
			}

			rows := make([][]string, 0, len(paths))
			for _, p := range paths {
				size := ""
				if info, err := os.Stat(p); err == nil && !info.IsDir() {
					size = humanize.Bytes(uint64(info.Size()))
				}
				rows = append(rows, []string{filepath.Base(p), size})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"NAME", "SIZE"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Shell glob filter on entry names")
	cmd.Flags().StringVarP(&regex, "regex", "r", "", "Regular expression filter on full paths")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the path list as JSON")

	return cmd
}
