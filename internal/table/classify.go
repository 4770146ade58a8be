package table

// Kind is the encoding verdict for one column, recomputed on every dump.
type Kind int

const (
	// KindPlain marks a column that passes through the codec unchanged.
	KindPlain Kind = iota
	// KindList marks a column whose non-missing cells are all lists.
	KindList
	// KindMapping marks a column whose non-missing cells are all key/value
	// mappings.
	KindMapping
)

// Structured reports whether the kind requires JSON serialization of cells.
func (k Kind) Structured() bool { return k == KindList || k == KindMapping }

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindMapping:
		return "mapping"
	default:
		return "plain"
	}
}

// Classify computes the encoding verdict for a column. A column is
// structured only when every non-missing cell is a list, or every
// non-missing cell is a mapping. Mixing the two kinds, or mixing structured
// with scalar values, always yields KindPlain, as does an all-missing or
// empty column.
func Classify(col Column) Kind {
	kind := KindPlain
	seen := false
	for _, cell := range col.Cells {
		if IsMissing(cell) {
			continue
		}
		var cellKind Kind
		switch cell.(type) {
		case []any:
			cellKind = KindList
		case map[string]any:
			cellKind = KindMapping
		default:
			return KindPlain
		}
		if seen && cellKind != kind {
			return KindPlain
		}
		kind = cellKind
		seen = true
	}
	if !seen {
		return KindPlain
	}
	return kind
}
