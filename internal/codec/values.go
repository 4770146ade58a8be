package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dataproj/internal/table"
)

// formatCell renders one cell as a delimited-text field. Missing cells render
// as the empty field.
func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case bool:
		return strconv.FormatBool(c)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	case json.Number:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// inferColumn types a column of raw text fields. Empty fields are missing.
// The narrowest type that fits every non-missing field wins, in the order
// int, float, bool, string.
func inferColumn(fields []string) ([]any, ColumnType) {
	for _, ct := range []ColumnType{TypeInt, TypeFloat, TypeBool} {
		if cells, ok := coerceColumn(fields, ct); ok {
			return cells, ct
		}
	}
	cells, _ := coerceColumn(fields, TypeString)
	return cells, TypeString
}

// coerceColumn parses every non-missing field as the given type. It reports
// false when any field does not fit.
func coerceColumn(fields []string, ct ColumnType) ([]any, bool) {
	cells := make([]any, len(fields))
	for i, f := range fields {
		if f == "" {
			cells[i] = nil
			continue
		}
		switch ct {
		case TypeInt:
			n, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, false
			}
			cells[i] = n
		case TypeFloat:
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, false
			}
			cells[i] = x
		case TypeBool:
			switch strings.ToLower(f) {
			case "true":
				cells[i] = true
			case "false":
				cells[i] = false
			default:
				return nil, false
			}
		default:
			cells[i] = f
		}
	}
	return cells, true
}

// tryJSONColumn attempts the JSON-decode pass over one string-typed column.
// Missing cells are decoded as the empty-string literal and converted back to
// missing afterwards. Partial success is never applied: if any cell fails to
// parse, the attempt reports false and the caller keeps the original cells.
func tryJSONColumn(cells []any) ([]any, bool) {
	out := make([]any, len(cells))
	for i, cell := range cells {
		text := `""`
		if !table.IsMissing(cell) {
			s, ok := cell.(string)
			if !ok {
				return nil, false
			}
			text = s
		}
		v, err := decodeJSONStrict(text)
		if err != nil {
			return nil, false
		}
		if s, ok := v.(string); ok && s == "" {
			out[i] = nil
			continue
		}
		out[i] = v
	}
	return out, true
}

// decodeJSONStrict parses exactly one JSON value, rejecting trailing content,
// and normalizes numbers so integral values come back as int64.
func decodeJSONStrict(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing content after JSON value")
	}
	return normalizeJSON(v), nil
}

// normalizeJSON rewrites json.Number leaves into int64 or float64,
// recursively through lists and mappings.
func normalizeJSON(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
			return n
		}
		if x, err := val.Float64(); err == nil {
			return x
		}
		return val.String()
	case []any:
		for i := range val {
			val[i] = normalizeJSON(val[i])
		}
		return val
	case map[string]any:
		for k := range val {
			val[k] = normalizeJSON(val[k])
		}
		return val
	default:
		return v
	}
}
