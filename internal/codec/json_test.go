package codec

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"dataproj/internal/table"
)

func TestJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	tbl := mustTable(t,
		table.Column{Name: "foo", Cells: []any{int64(1), "boo"}},
		table.Column{Name: "baz", Cells: []any{nil, map[string]any{"k": []any{int64(1), int64(2)}}}},
	)

	path, err := WriteJSON(tbl, filepath.Join(dir, "doc"), JSONWriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "doc.json") {
		t.Fatalf("path = %q, want .json appended", path)
	}

	got, err := ReadJSON(path, JSONReadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got.ColumnNames(), []string{"foo", "baz"}) {
		t.Fatalf("column order = %v", got.ColumnNames())
	}
	for _, name := range tbl.ColumnNames() {
		want, _ := tbl.Column(name)
		have, _ := got.Column(name)
		if !reflect.DeepEqual(have.Cells, want.Cells) {
			t.Fatalf("column %q = %#v, want %#v", name, have.Cells, want.Cells)
		}
	}
	if !got.HasDefaultIndex() {
		t.Fatal("trivial index should stay trivial through a round-trip")
	}
}

func TestJSONRoundTripLabeledIndex(t *testing.T) {
	dir := t.TempDir()
	tbl := mustTable(t, table.Column{Name: "a", Cells: []any{int64(1), int64(2)}})
	if _, err := tbl.WithIndex([]any{"r1", "r2"}); err != nil {
		t.Fatal(err)
	}

	path, err := WriteJSON(tbl, filepath.Join(dir, "labeled"), JSONWriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(path, JSONReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Index(), []any{"r1", "r2"}) {
		t.Fatalf("index = %#v", got.Index())
	}
}

func TestReadJSONSuffixFallback(t *testing.T) {
	dir := t.TempDir()
	tbl := mustTable(t, table.Column{Name: "a", Cells: []any{int64(1)}})

	if _, err := WriteJSON(tbl, filepath.Join(dir, "doc"), JSONWriteOptions{}); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadJSON(filepath.Join(dir, "doc"), JSONReadOptions{}); err != nil {
		t.Fatalf("suffix fallback failed: %v", err)
	}

	_, err := ReadJSON(filepath.Join(dir, "absent"), JSONReadOptions{})
	if !errors.Is(err, table.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(dir, "absent")) {
		t.Fatalf("error should name the requested path: %v", err)
	}
}

func TestJSONCompressedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	tbl := mustTable(t, table.Column{Name: "a", Cells: []any{int64(1), nil}})

	path, err := WriteJSON(tbl, filepath.Join(dir, "doc.json.zst"), JSONWriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "doc.json.zst" {
		t.Fatalf("path = %q", path)
	}

	got, err := ReadJSON(path, JSONReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	col, _ := got.Column("a")
	if !reflect.DeepEqual(col.Cells, []any{int64(1), nil}) {
		t.Fatalf("cells = %#v", col.Cells)
	}
}

func TestReadJSONRaggedRowRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	doc := `{"columns":["a","b"],"index":[0],"data":[[1]]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadJSON(path, JSONReadOptions{}); err == nil {
		t.Fatal("expected error for ragged data row")
	}
}
