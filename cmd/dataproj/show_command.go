package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dataproj/internal/codec"
	"dataproj/internal/table"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var subdir string
	var rows int
	var fromJSON bool
	var noJSONColumns bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Preview a table stored in the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := ctx.workspace()
			if err != nil {
				return err
			}
			sub := ctx.subdirOrDefault(subdir)

			var tbl *table.Table
			if fromJSON {
				tbl, err = w.LoadTableJSON(args[0], sub, codec.JSONReadOptions{})
			} else {
				tbl, err = w.LoadTable(args[0], sub, codec.DelimitedReadOptions{
					DisableJSONDecode: noJSONColumns,
				})
			}
			if err != nil {
				return err
			}

			limit := rows
			if limit <= 0 {
				if cfg, err := ctx.ensureConfig(); err == nil {
					limit = cfg.PreviewRows
				} else {
					limit = 10
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(tbl.ColumnNames(), previewRows(tbl, limit), nil))
			if tbl.NumRows() > limit {
				fmt.Fprintf(out, "… %d of %d rows shown\n", limit, tbl.NumRows())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subdir, "subdir", "s", "", "Subdirectory to load from (default from config)")
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "Row limit for the preview")
	cmd.Flags().BoolVar(&fromJSON, "json", false, "Load a split-orientation JSON table")
	cmd.Flags().BoolVar(&noJSONColumns, "no-json-columns", false, "Skip the structured-column JSON decode pass")

	return cmd
}

// previewRows renders up to limit rows of the table as display strings.
func previewRows(tbl *table.Table, limit int) [][]string {
	n := tbl.NumRows()
	if n > limit {
		n = limit
	}
	cols := tbl.Columns()
	rows := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = displayCell(col.Cells[r])
		}
		rows[r] = row
	}
	return rows
}

func displayCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case bool:
		return strconv.FormatBool(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	case []any, map[string]any:
		text, err := json.Marshal(c)
		if err != nil {
			return fmt.Sprint(c)
		}
		return string(text)
	default:
		return fmt.Sprint(c)
	}
}
