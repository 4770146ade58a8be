package table

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		cells []any
		want  Kind
	}{
		{"all lists", []any{[]any{1}, []any{2}}, KindList},
		{"all mappings", []any{map[string]any{"a": 1}, map[string]any{"b": 2}}, KindMapping},
		{"lists with missing", []any{[]any{1}, nil, []any{3}}, KindList},
		{"mixed list and mapping", []any{[]any{1}, map[string]any{"a": 1}}, KindPlain},
		{"structured mixed with scalar", []any{[]any{1}, "scalar"}, KindPlain},
		{"all scalars", []any{1, 2, 3}, KindPlain},
		{"all missing", []any{nil, nil}, KindPlain},
		{"empty", nil, KindPlain},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(Column{Name: "c", Cells: tc.cells})
			if got != tc.want {
				t.Fatalf("Classify = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKindStructured(t *testing.T) {
	if KindPlain.Structured() {
		t.Fatal("plain must not be structured")
	}
	if !KindList.Structured() || !KindMapping.Structured() {
		t.Fatal("list and mapping must be structured")
	}
}
