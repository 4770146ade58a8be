package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"dataproj/internal/codec"
	"dataproj/internal/table"
)

type columnInfo struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Missing int    `json:"missing"`
}

type tableInfo struct {
	Path    string       `json:"path"`
	Rows    int          `json:"rows"`
	Cols    int          `json:"cols"`
	Size    int64        `json:"size_bytes"`
	Columns []columnInfo `json:"columns"`
}

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var subdir string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Show a stored table's shape, per-column classification, and file size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := ctx.workspace()
			if err != nil {
				return err
			}
			sub := ctx.subdirOrDefault(subdir)

			var path string
			obs := func(e codec.Event) { path = e.Path }
			tbl, err := w.LoadTable(args[0], sub, codec.DelimitedReadOptions{Observe: obs})
			if err != nil {
				return err
			}

			info := tableInfo{Path: path, Rows: tbl.NumRows(), Cols: tbl.NumCols()}
			if fi, err := os.Stat(path); err == nil {
				info.Size = fi.Size()
			}
			for _, col := range tbl.Columns() {
				missing := 0
				for _, cell := range col.Cells {
					if table.IsMissing(cell) {
						missing++
					}
				}
				info.Columns = append(info.Columns, columnInfo{
					Name:    col.Name,
					Kind:    table.Classify(col).String(),
					Missing: missing,
				})
			}

			if jsonOut {
				return writeJSON(cmd, info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d rows × %d cols, %s\n",
				info.Path, info.Rows, info.Cols, humanize.Bytes(uint64(info.Size)))

			rows := make([][]string, 0, len(info.Columns))
			for _, c := range info.Columns {
				rows = append(rows, []string{c.Name, c.Kind, strconv.Itoa(c.Missing)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"COLUMN", "KIND", "MISSING"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subdir, "subdir", "s", "", "Subdirectory to load from (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")

	return cmd
}
