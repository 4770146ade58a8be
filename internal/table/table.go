package table

import (
	"fmt"
	"math"
)

// Column is a named, ordered sequence of cells. A nil cell is the missing
// marker and may appear in any column regardless of the column's value type.
type Column struct {
	Name  string
	Cells []any
}

// Table is an in-memory rectangular dataset: ordered named columns of equal
// length plus an optional row index. Construct with New; a zero Table is
// valid and empty.
type Table struct {
	cols  []Column
	index []any
}

// New builds a Table from the given columns. Column names must be unique and
// every column must have the same number of cells.
func New(cols ...Column) (*Table, error) {
	seen := make(map[string]struct{}, len(cols))
	for i, col := range cols {
		if _, dup := seen[col.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrInvalidArgument, col.Name)
		}
		seen[col.Name] = struct{}{}
		if i > 0 && len(col.Cells) != len(cols[0].Cells) {
			return nil, fmt.Errorf("%w: column %q has %d cells, want %d",
				ErrInvalidArgument, col.Name, len(col.Cells), len(cols[0].Cells))
		}
	}
	return &Table{cols: cols}, nil
}

// WithIndex attaches row labels to the table. The label count must match the
// row count. Passing nil clears the index back to the trivial positional one.
func (t *Table) WithIndex(labels []any) (*Table, error) {
	if labels != nil && len(labels) != t.NumRows() {
		return nil, fmt.Errorf("%w: index has %d labels, table has %d rows",
			ErrInvalidArgument, len(labels), t.NumRows())
	}
	t.index = labels
	return t, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Cells)
}

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// Column returns the named column and whether it exists.
func (t *Table) Column(name string) (Column, bool) {
	for _, col := range t.cols {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Columns returns a shallow copy of the column slice. Cell slices are shared
// with the table; callers that transform cells must replace the Cells slice
// rather than write through it.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// SetColumn replaces the named column's cells in place. The column must
// already exist and the cell count must match the row count.
func (t *Table) SetColumn(name string, cells []any) error {
	if len(cells) != t.NumRows() {
		return fmt.Errorf("%w: column %q replacement has %d cells, table has %d rows",
			ErrInvalidArgument, name, len(cells), t.NumRows())
	}
	for i := range t.cols {
		if t.cols[i].Name == name {
			t.cols[i].Cells = cells
			return nil
		}
	}
	return fmt.Errorf("%w: no column %q", ErrInvalidArgument, name)
}

// Index returns the row labels, or nil when the index is the trivial
// positional one.
func (t *Table) Index() []any { return t.index }

// HasDefaultIndex reports whether the row index carries no information beyond
// row position: either no labels at all, or integer labels forming the
// sequence 0, 1, 2, … n-1.
func (t *Table) HasDefaultIndex() bool {
	if t.index == nil {
		return true
	}
	for i, label := range t.index {
		n, ok := asInt(label)
		if !ok || n != int64(i) {
			return false
		}
	}
	return true
}

// IsMissing reports whether a cell holds the missing marker.
func IsMissing(v any) bool { return v == nil }

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), true
		}
	}
	return 0, false
}
