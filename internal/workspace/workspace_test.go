package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"dataproj/internal/codec"
	"dataproj/internal/table"
)

func newTestWorkspace(t *testing.T, opts ...Option) *Workspace {
	t.Helper()
	w, err := New(filepath.Join(t.TempDir(), "proj"), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewCreatesLayout(t *testing.T) {
	w := newTestWorkspace(t)

	for _, dir := range []string{w.Dir, w.DataDir, w.ResultsDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatal(err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", dir)
		}
	}
	if w.Name != "proj" {
		t.Fatalf("Name = %q", w.Name)
	}
}

func TestNewIsIdempotent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "proj")
	w1, err := New(base)
	if err != nil {
		t.Fatal(err)
	}
	touch(t, w1.DataFile("kept.txt"))

	w2, err := New(base)
	if err != nil {
		t.Fatalf("second construction failed: %v", err)
	}
	if !reflect.DeepEqual(w1.DataDir, w2.DataDir) {
		t.Fatalf("layouts differ: %q vs %q", w1.DataDir, w2.DataDir)
	}
	if _, err := os.Stat(w2.DataFile("kept.txt")); err != nil {
		t.Fatalf("pre-existing file lost: %v", err)
	}
}

func TestFilesGlobAndRegex(t *testing.T) {
	w := newTestWorkspace(t)
	touch(t, w.DataFile("data_file.txt"))
	touch(t, w.DataFile("data_file.csv"))
	touch(t, w.DataFile("other.tsv"))

	all, err := w.DataFiles(ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d files, want 3", len(all))
	}

	txt, err := w.DataFiles(ListOptions{Pattern: "*.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if len(txt) != 1 || filepath.Base(txt[0]) != "data_file.txt" {
		t.Fatalf("glob = %v", txt)
	}

	tab, err := w.DataFiles(ListOptions{Regex: `data_.+\.(csv|tsv)`})
	if err != nil {
		t.Fatal(err)
	}
	if len(tab) != 1 || filepath.Base(tab[0]) != "data_file.csv" {
		t.Fatalf("regex = %v", tab)
	}
}

func TestFilesRejectsPatternAndRegexTogether(t *testing.T) {
	w := newTestWorkspace(t)
	_, err := w.DataFiles(ListOptions{Pattern: "*", Regex: ".*"})
	if !errors.Is(err, table.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestResolveExactMatch(t *testing.T) {
	w := newTestWorkspace(t)
	touch(t, w.DataFile("exact.txt"))

	got, err := w.Resolve(DataSubdir, "exact.txt", true)
	if err != nil {
		t.Fatal(err)
	}
	if got != w.DataFile("exact.txt") {
		t.Fatalf("path = %q", got)
	}
}

func TestResolveFuzzyAmbiguity(t *testing.T) {
	w := newTestWorkspace(t)
	touch(t, w.DataFile("foo_a.txt"))
	touch(t, w.DataFile("foo_b.txt"))

	_, err := w.Resolve(DataSubdir, "foo", true)
	if !errors.Is(err, table.ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
	if !strings.Contains(err.Error(), `"foo"`) || !strings.Contains(err.Error(), "2") {
		t.Fatalf("ambiguous error should name the request and the count: %v", err)
	}

	got, err := w.Resolve(DataSubdir, "foo_a", true)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "foo_a.txt" {
		t.Fatalf("unique fuzzy match = %q", got)
	}
}

func TestResolveNotFoundNamesRequest(t *testing.T) {
	w := newTestWorkspace(t)

	_, err := w.Resolve(DataSubdir, "nothing", true)
	if !errors.Is(err, table.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), `"nothing"`) {
		t.Fatalf("error should name the request: %v", err)
	}
}

func TestResolveWithoutExistenceCheck(t *testing.T) {
	w := newTestWorkspace(t)

	got, err := w.Resolve(ResultsSubdir, "future_output.csv", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != w.ResultsFile("future_output.csv") {
		t.Fatalf("path = %q", got)
	}
}

func TestResolveRecursiveSearch(t *testing.T) {
	w := newTestWorkspace(t, WithRecursiveSearch())
	nested := filepath.Join(w.DataDir, "season1")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(nested, "episode.csv"))

	got, err := w.Resolve(DataSubdir, "episode", true)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "episode.csv" {
		t.Fatalf("recursive match = %q", got)
	}
}

func TestDumpAndLoadTable(t *testing.T) {
	w := newTestWorkspace(t)
	tbl, err := table.New(
		table.Column{Name: "id", Cells: []any{int64(1), int64(2)}},
		table.Column{Name: "tags", Cells: []any{[]any{"a"}, []any{"b"}}},
	)
	if err != nil {
		t.Fatal(err)
	}

	path, err := w.DumpTable(tbl, "out", "", codec.DelimitedWriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if path != w.ResultsFile("out.csv") {
		t.Fatalf("dump path = %q", path)
	}

	got, err := w.LoadTable("out", "", codec.DelimitedReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	tags, _ := got.Column("tags")
	if !reflect.DeepEqual(tags.Cells, []any{[]any{"a"}, []any{"b"}}) {
		t.Fatalf("tags = %#v", tags.Cells)
	}
}

func TestDumpAndLoadTableJSON(t *testing.T) {
	w := newTestWorkspace(t)
	tbl, err := table.New(
		table.Column{Name: "foo", Cells: []any{int64(1), "boo"}},
		table.Column{Name: "baz", Cells: []any{"x", nil}},
	)
	if err != nil {
		t.Fatal(err)
	}

	path, err := w.DumpTableJSON(tbl, "doc", DataSubdir, codec.JSONWriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if path != w.DataFile("doc.json") {
		t.Fatalf("dump path = %q", path)
	}

	got, err := w.LoadTableJSON("doc", DataSubdir, codec.JSONReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.ColumnNames(), []string{"foo", "baz"}) {
		t.Fatalf("columns = %v", got.ColumnNames())
	}
}

func TestWorkspaceObserverChain(t *testing.T) {
	var wsEvents, callEvents int
	w := newTestWorkspace(t, WithObserver(func(codec.Event) { wsEvents++ }))

	tbl, err := table.New(table.Column{Name: "a", Cells: []any{int64(1)}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.DumpTable(tbl, "obs", "", codec.DelimitedWriteOptions{
		Observe: func(codec.Event) { callEvents++ },
	})
	if err != nil {
		t.Fatal(err)
	}

	if wsEvents != 1 || callEvents != 1 {
		t.Fatalf("events = %d workspace, %d per-call; want 1 and 1", wsEvents, callEvents)
	}
}
