package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dataproj/internal/codec"
	"dataproj/internal/table"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var delimiter string
	var noJSONColumns bool

	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Re-encode a table file between delimited and JSON formats",
		Long: "Reads src and writes dst; formats are inferred from the file names. " +
			"A .json marker selects the split-orientation JSON layout, .tsv selects " +
			"tab-delimited text, anything else is comma-delimited. Compression " +
			"suffixes (.gz, .zst) apply on either side.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			logger := ctx.logger()

			obs := func(e codec.Event) {
				logger.Debug("convert step", "op", e.Op, "path", e.Path, "rows", e.Rows)
			}

			var tbl *table.Table
			var err error
			if strings.Contains(src, ".json") {
				tbl, err = codec.ReadJSON(src, codec.JSONReadOptions{Observe: obs})
			} else {
				tbl, err = codec.ReadDelimited(src, codec.DelimitedReadOptions{
					DisableJSONDecode: noJSONColumns,
					Observe:           obs,
				})
			}
			if err != nil {
				return err
			}

			var written string
			if strings.Contains(dst, ".json") {
				written, err = codec.WriteJSON(tbl, dst, codec.JSONWriteOptions{Observe: obs})
			} else {
				opts := codec.DelimitedWriteOptions{Observe: obs}
				if delimiter != "" {
					runes := []rune(delimiter)
					if len(runes) != 1 {
						return fmt.Errorf("%w: delimiter must be a single character", table.ErrInvalidArgument)
					}
					opts.Delimiter = runes[0]
				}
				written, err = codec.WriteDelimited(tbl, dst, opts)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d rows, %d cols)\n", written, tbl.NumRows(), tbl.NumCols())
			return nil
		},
	}

	cmd.Flags().StringVar(&delimiter, "delimiter", "", "Explicit output delimiter for delimited targets")
	cmd.Flags().BoolVar(&noJSONColumns, "no-json-columns", false, "Skip the structured-column JSON decode pass on read")

	return cmd
}
