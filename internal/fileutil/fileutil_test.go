package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}

	got, err := ExpandHome("~/projects/demo")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, "projects", "demo")
	if got != want {
		t.Fatalf("ExpandHome = %q, want %q", got, want)
	}
}

func TestExpandHomeAbsolute(t *testing.T) {
	got, err := ExpandHome("/tmp/demo")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/demo" {
		t.Fatalf("ExpandHome = %q, want /tmp/demo", got)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir failed: %v", err)
	}
	if !Exists(dir) {
		t.Fatal("directory missing after EnsureDir")
	}
}

func TestEnsureDirRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(path); err == nil {
		t.Fatal("expected error for existing file")
	}
}

func TestWriteAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	n, err := WriteAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("byte count = %d, want 5", n)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Fatalf("content = %q", got)
	}
}

func TestWriteAtomicLeavesNoTruncatedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	boom := errors.New("boom")

	_, err := WriteAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
	if Exists(path) {
		t.Fatal("destination should not exist after failed write")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !IsFile(file) {
		t.Fatal("IsFile false for regular file")
	}
	if IsFile(dir) {
		t.Fatal("IsFile true for directory")
	}
	if IsFile(filepath.Join(dir, "missing")) {
		t.Fatal("IsFile true for missing path")
	}
}
