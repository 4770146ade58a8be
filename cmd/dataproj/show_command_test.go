package main

import (
	"reflect"
	"testing"

	"dataproj/internal/table"
)

func TestDisplayCell(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{int64(7), "7"},
		{2.5, "2.5"},
		{true, "true"},
		{[]any{int64(1), "a"}, `[1,"a"]`},
		{map[string]any{"k": int64(1)}, `{"k":1}`},
	}
	for _, tc := range cases {
		if got := displayCell(tc.in); got != tc.want {
			t.Fatalf("displayCell(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPreviewRowsrespectsLimit(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "a", Cells: []any{int64(1), int64(2), int64(3)}},
		table.Column{Name: "b", Cells: []any{"x", nil, "z"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	rows := previewRows(tbl, 2)
	want := [][]string{{"1", "x"}, {"2", ""}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}

	rows = previewRows(tbl, 10)
	if len(rows) != 3 {
		t.Fatalf("limit above row count should return all rows, got %d", len(rows))
	}
}
