package codec

import "time"

// ColumnType names an explicit cell type for one column of a delimited read,
// overriding inference and exempting the column from the JSON-decode pass.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeInt
	TypeFloat
	TypeBool
)

func (ct ColumnType) String() string {
	switch ct {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "string"
	}
}

// Event describes one completed codec operation for instrumentation.
type Event struct {
	Op      string
	Path    string
	Rows    int
	Cols    int
	Bytes   int64
	Elapsed time.Duration
}

// Observer receives an Event after each read or write. A nil observer is
// silently skipped; observers must not retain the event's path slice beyond
// the call.
type Observer func(Event)

func (o Observer) emit(op, path string, rows, cols int, bytes int64, start time.Time) {
	if o == nil {
		return
	}
	o(Event{Op: op, Path: path, Rows: rows, Cols: cols, Bytes: bytes, Elapsed: time.Since(start)})
}

// DelimitedWriteOptions control WriteDelimited.
type DelimitedWriteOptions struct {
	// Delimiter overrides inference. Zero means infer: tab when the
	// destination contains a ".tsv" marker, comma otherwise.
	Delimiter rune
	// IncludeIndex overrides the index heuristic. Nil means suppress the
	// index when it is the trivial positional one and include it otherwise.
	IncludeIndex *bool
	// IndexName is the header written for the index column when included.
	IndexName string
	// UseCRLF is passed through to the underlying writer.
	UseCRLF bool

	Observe Observer
}

// DelimitedReadOptions control ReadDelimited.
type DelimitedReadOptions struct {
	// Delimiter overrides inference from the resolved path.
	Delimiter rune
	// Types forces cell types for the named columns; those columns are never
	// run through the JSON-decode pass.
	Types map[string]ColumnType
	// DisableJSONDecode skips the JSON-decode pass for every column.
	DisableJSONDecode bool
	// Charset names the input text encoding when it is not UTF-8, e.g.
	// "latin-1" or "windows-1252".
	Charset string

	// Pass-through knobs for the underlying reader.
	Comment          rune
	LazyQuotes       bool
	TrimLeadingSpace bool

	Observe Observer
}

// JSONWriteOptions control WriteJSON.
type JSONWriteOptions struct {
	Observe Observer
}

// JSONReadOptions control ReadJSON.
type JSONReadOptions struct {
	Observe Observer
}
