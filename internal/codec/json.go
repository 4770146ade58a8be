package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"dataproj/internal/fileutil"
	"dataproj/internal/table"
)

// splitDocument is the column-order-preserving JSON layout: ordered column
// names, ordered row labels, and the row-major value matrix.
type splitDocument struct {
	Columns []string `json:"columns"`
	Index   []any    `json:"index"`
	Data    [][]any  `json:"data"`
}

// WriteJSON encodes the whole table as a single split-orientation JSON
// document at dest, appending ".json" when the destination lacks it, and
// returns the final path. Cell values are native JSON; no per-column
// heuristic applies.
func WriteJSON(t *table.Table, dest string, opts JSONWriteOptions) (string, error) {
	start := time.Now()

	if !strings.Contains(dest, ".json") {
		dest += ".json"
	}

	doc := splitDocument{
		Columns: t.ColumnNames(),
		Index:   t.Index(),
		Data:    make([][]any, t.NumRows()),
	}
	if doc.Index == nil {
		doc.Index = make([]any, t.NumRows())
		for i := range doc.Index {
			doc.Index[i] = int64(i)
		}
	}
	cols := t.Columns()
	for row := range doc.Data {
		cells := make([]any, len(cols))
		for i, col := range cols {
			cells[i] = col.Cells[row]
		}
		doc.Data[row] = cells
	}

	bytes, err := fileutil.WriteAtomic(dest, func(w io.Writer) error {
		zw, err := wrapWriter(dest, w)
		if err != nil {
			return err
		}
		if err := json.NewEncoder(zw).Encode(doc); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	})
	if err != nil {
		return "", err
	}

	opts.Observe.emit("write_json", dest, t.NumRows(), t.NumCols(), bytes, start)
	return dest, nil
}

// ReadJSON decodes a split-orientation JSON document into a table. When the
// literal path does not exist but the same path with ".json" appended does,
// the suffixed path is used.
func ReadJSON(src string, opts JSONReadOptions) (*table.Table, error) {
	start := time.Now()

	path := src
	if !fileutil.IsFile(path) && fileutil.IsFile(path+".json") {
		path += ".json"
	}
	if !fileutil.IsFile(path) {
		return nil, fmt.Errorf("%w: no file %q", table.ErrNotFound, src)
	}

	f, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var doc splitDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	t, err := tableFromSplit(doc)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	opts.Observe.emit("read_json", path, t.NumRows(), t.NumCols(), fileSize(path), start)
	return t, nil
}

func tableFromSplit(doc splitDocument) (*table.Table, error) {
	cols := make([]table.Column, len(doc.Columns))
	for i, name := range doc.Columns {
		cols[i] = table.Column{Name: name, Cells: make([]any, len(doc.Data))}
	}
	for row, cells := range doc.Data {
		if len(cells) != len(doc.Columns) {
			return nil, fmt.Errorf("row %d has %d values, want %d", row, len(cells), len(doc.Columns))
		}
		for i, v := range cells {
			cols[i].Cells[row] = normalizeJSON(v)
		}
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, err
	}

	if len(doc.Index) != 0 {
		labels := make([]any, len(doc.Index))
		for i, v := range doc.Index {
			labels[i] = normalizeJSON(v)
		}
		if _, err := t.WithIndex(labels); err != nil {
			return nil, err
		}
		if t.HasDefaultIndex() {
			// A 0..n-1 integer index carries no information; drop it so
			// round-trips reproduce the original trivial index.
			if _, err := t.WithIndex(nil); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}
