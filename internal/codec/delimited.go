package codec

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"dataproj/internal/fileutil"
	"dataproj/internal/table"
)

// WriteDelimited encodes the table as comma- or tab-separated text at dest
// and returns the final path, which may differ from dest when the ".csv"
// extension is auto-appended. Structured columns are JSONified on a shadow
// copy; the caller's table is never mutated.
func WriteDelimited(t *table.Table, dest string, opts DelimitedWriteOptions) (string, error) {
	start := time.Now()

	delim := opts.Delimiter
	if delim == 0 {
		if strings.Contains(dest, ".tsv") {
			delim = '\t'
		} else {
			delim = ','
		}
	}
	if delim == ',' && !strings.Contains(dest, ".csv") {
		dest += ".csv"
	}

	includeIndex := !t.HasDefaultIndex()
	if opts.IncludeIndex != nil {
		includeIndex = *opts.IncludeIndex
	}

	cols, err := jsonifyStructured(t.Columns())
	if err != nil {
		return "", err
	}

	bytes, err := fileutil.WriteAtomic(dest, func(w io.Writer) error {
		zw, err := wrapWriter(dest, w)
		if err != nil {
			return err
		}
		if err := writeRecords(zw, t, cols, delim, includeIndex, opts); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	})
	if err != nil {
		return "", err
	}

	opts.Observe.emit("write_delimited", dest, t.NumRows(), t.NumCols(), bytes, start)
	return dest, nil
}

// jsonifyStructured replaces the cells of structured columns with their JSON
// text, copying only the columns it transforms.
func jsonifyStructured(cols []table.Column) ([]table.Column, error) {
	for i, col := range cols {
		if !table.Classify(col).Structured() {
			continue
		}
		cells := make([]any, len(col.Cells))
		for j, cell := range col.Cells {
			if table.IsMissing(cell) {
				cells[j] = nil
				continue
			}
			text, err := json.Marshal(cell)
			if err != nil {
				return nil, fmt.Errorf("jsonify column %q: %w", col.Name, err)
			}
			cells[j] = string(text)
		}
		cols[i].Cells = cells
	}
	return cols, nil
}

func writeRecords(w io.Writer, t *table.Table, cols []table.Column, delim rune, includeIndex bool, opts DelimitedWriteOptions) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	cw.UseCRLF = opts.UseCRLF

	width := len(cols)
	if includeIndex {
		width++
	}

	record := make([]string, 0, width)
	if includeIndex {
		record = append(record, opts.IndexName)
	}
	for _, col := range cols {
		record = append(record, col.Name)
	}
	if err := cw.Write(record); err != nil {
		return err
	}

	labels := t.Index()
	for row := 0; row < t.NumRows(); row++ {
		record = record[:0]
		if includeIndex {
			if labels != nil {
				record = append(record, formatCell(labels[row]))
			} else {
				record = append(record, formatCell(int64(row)))
			}
		}
		for _, col := range cols {
			record = append(record, formatCell(col.Cells[row]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadDelimited decodes a delimited file into a table. The source path is
// resolved with the fallback chain: as given, then with ".csv" appended, then
// with ".tsv" substituted for ".csv". When no candidate exists the error
// names the originally requested path.
func ReadDelimited(src string, opts DelimitedReadOptions) (*table.Table, error) {
	start := time.Now()

	path := src
	if !fileutil.IsFile(path) {
		path += ".csv"
	}
	if !fileutil.IsFile(path) {
		path = strings.ReplaceAll(path, ".csv", ".tsv")
	}
	if !fileutil.IsFile(path) {
		return nil, fmt.Errorf("%w: no file %q", table.ErrNotFound, src)
	}

	delim := opts.Delimiter
	if delim == 0 {
		if strings.Contains(path, ".tsv") {
			delim = '\t'
		} else {
			delim = ','
		}
	}

	f, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := charsetReader(opts.Charset, f)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(in)
	cr.Comma = delim
	cr.Comment = opts.Comment
	cr.LazyQuotes = opts.LazyQuotes
	cr.TrimLeadingSpace = opts.TrimLeadingSpace

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	if len(records) == 0 {
		return table.New()
	}

	t, err := buildTable(records, opts)
	if err != nil {
		return nil, err
	}

	opts.Observe.emit("read_delimited", path, t.NumRows(), t.NumCols(), fileSize(path), start)
	return t, nil
}

func buildTable(records [][]string, opts DelimitedReadOptions) (*table.Table, error) {
	header := records[0]
	rows := records[1:]

	cols := make([]table.Column, len(header))
	kinds := make([]ColumnType, len(header))
	for i, name := range header {
		fields := make([]string, len(rows))
		for r, row := range rows {
			if i < len(row) {
				fields[r] = row[i]
			}
		}

		if ct, forced := opts.Types[name]; forced {
			cells, ok := coerceColumn(fields, ct)
			if !ok {
				return nil, fmt.Errorf("%w: column %q does not parse as %s",
					table.ErrInvalidArgument, name, ct)
			}
			cols[i] = table.Column{Name: name, Cells: cells}
			kinds[i] = ct
			continue
		}

		cells, ct := inferColumn(fields)
		cols[i] = table.Column{Name: name, Cells: cells}
		kinds[i] = ct
	}

	if !opts.DisableJSONDecode {
		for i := range cols {
			if kinds[i] != TypeString {
				continue
			}
			if _, forced := opts.Types[cols[i].Name]; forced {
				continue
			}
			if decoded, ok := tryJSONColumn(cols[i].Cells); ok {
				cols[i].Cells = decoded
			}
		}
	}

	return table.New(cols...)
}
