package workspace

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"

	"dataproj/internal/codec"
	"dataproj/internal/fileutil"
	"dataproj/internal/table"
)

// Conventional subdirectory names. Callers may pass any subdirectory name;
// these two are guaranteed to exist after New.
const (
	DataSubdir    = "data"
	ResultsSubdir = "results"
)

// Workspace owns a project's base directory and its data/results
// subdirectories. It resolves logical file names to concrete paths and
// delegates table reading and writing to the codec. It holds no open file
// handles; every operation re-resolves paths on demand.
type Workspace struct {
	Dir        string
	Name       string
	DataDir    string
	ResultsDir string

	logger    *slog.Logger
	recursive bool
	observe   codec.Observer
}

// Option customizes workspace construction.
type Option func(*Workspace)

// WithLogger routes table I/O instrumentation to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithRecursiveSearch makes fuzzy name resolution descend into
// subdirectories instead of matching direct entries only.
func WithRecursiveSearch() Option {
	return func(w *Workspace) { w.recursive = true }
}

// WithObserver registers an extra callback for codec events, invoked after
// the workspace's own logging.
func WithObserver(obs codec.Observer) Option {
	return func(w *Workspace) { w.observe = obs }
}

// New resolves baseDir (expanding a leading ~) to an absolute path and
// ensures the base, data, and results directories exist. Construction over
// an existing workspace is idempotent and never touches existing contents.
func New(baseDir string, opts ...Option) (*Workspace, error) {
	dir, err := fileutil.ExpandHome(baseDir)
	if err != nil {
		return nil, err
	}

	w := &Workspace{
		Dir:        dir,
		Name:       filepath.Base(dir),
		DataDir:    filepath.Join(dir, DataSubdir),
		ResultsDir: filepath.Join(dir, ResultsSubdir),
		logger:     slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, d := range []string{w.Dir, w.DataDir, w.ResultsDir} {
		if err := fileutil.EnsureDir(d); err != nil {
			return nil, fmt.Errorf("ensure workspace directory: %w", err)
		}
	}
	return w, nil
}

// ListOptions filter a directory listing. Pattern is a shell glob matched
// against entry names; Regex is matched against the full path. Supplying
// both is a caller error.
type ListOptions struct {
	Pattern string
	Regex   string
}

// Files lists entries directly under the named subdirectory, optionally
// filtered by a glob pattern or a regular expression. Results are sorted.
func (w *Workspace) Files(subdir string, opts ListOptions) ([]string, error) {
	if opts.Pattern != "" && opts.Regex != "" {
		return nil, fmt.Errorf("%w: specify a glob pattern or a regex, not both", table.ErrInvalidArgument)
	}

	dir := w.SubdirPath(subdir)

	if opts.Regex != "" {
		re, err := regexp.Compile(opts.Regex)
		if err != nil {
			return nil, fmt.Errorf("%w: bad regex: %v", table.ErrInvalidArgument, err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, e := range entries {
			full := filepath.Join(dir, e.Name())
			if re.MatchString(full) {
				paths = append(paths, full)
			}
		}
		return paths, nil
	}

	pattern := opts.Pattern
	if pattern == "" {
		pattern = "*"
	}
	return filepath.Glob(filepath.Join(dir, pattern))
}

// Resolve maps a logical name to a path under the named subdirectory.
//
// With checkExists false it returns the joined path without touching the
// filesystem, which is the write-target form. With checkExists true an
// exactly matching path is returned as-is; otherwise entries are fuzzy
// searched for names containing the requested name as a substring. Zero
// matches fail with not-found naming the requested name; more than one
// fails with ambiguous rather than silently picking a candidate.
func (w *Workspace) Resolve(subdir, name string, checkExists bool) (string, error) {
	path := filepath.Join(w.SubdirPath(subdir), name)
	if !checkExists {
		return path, nil
	}
	if fileutil.Exists(path) {
		return path, nil
	}

	matches, err := w.fuzzyMatches(w.SubdirPath(subdir), name)
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no file matching %q in %s", table.ErrNotFound, name, subdir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d files in %s", table.ErrAmbiguous, name, len(matches), subdir)
	}
}

func (w *Workspace) fuzzyMatches(dir, name string) ([]string, error) {
	var matches []string
	if w.recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != dir && strings.Contains(d.Name(), name) {
				matches = append(matches, path)
			}
			return nil
		})
		return matches, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), name) {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}
	return matches, nil
}

// SubdirPath joins a subdirectory name under the workspace base directory.
func (w *Workspace) SubdirPath(subdir string) string {
	return filepath.Join(w.Dir, subdir)
}

// DataFile returns the path for a file name under data/ without any
// existence check.
func (w *Workspace) DataFile(name string) string {
	return filepath.Join(w.DataDir, name)
}

// ResultsFile returns the path for a file name under results/ without any
// existence check.
func (w *Workspace) ResultsFile(name string) string {
	return filepath.Join(w.ResultsDir, name)
}

// DataFiles lists entries under data/.
func (w *Workspace) DataFiles(opts ListOptions) ([]string, error) {
	return w.Files(DataSubdir, opts)
}

// ResultsFiles lists entries under results/.
func (w *Workspace) ResultsFiles(opts ListOptions) ([]string, error) {
	return w.Files(ResultsSubdir, opts)
}

// DumpTable writes the table as delimited text under subdir (default
// results) and returns the written path.
func (w *Workspace) DumpTable(t *table.Table, name, subdir string, opts codec.DelimitedWriteOptions) (string, error) {
	path, err := w.Resolve(defaultSubdir(subdir), name, false)
	if err != nil {
		return "", err
	}
	opts.Observe = w.observer(opts.Observe)
	return codec.WriteDelimited(t, path, opts)
}

// LoadTable reads a delimited table from subdir (default results), relying
// on the codec's extension fallback chain for unsuffixed names.
func (w *Workspace) LoadTable(name, subdir string, opts codec.DelimitedReadOptions) (*table.Table, error) {
	path, err := w.Resolve(defaultSubdir(subdir), name, false)
	if err != nil {
		return nil, err
	}
	opts.Observe = w.observer(opts.Observe)
	return codec.ReadDelimited(path, opts)
}

// DumpTableJSON writes the table as a split-orientation JSON document under
// subdir (default results).
func (w *Workspace) DumpTableJSON(t *table.Table, name, subdir string, opts codec.JSONWriteOptions) (string, error) {
	path, err := w.Resolve(defaultSubdir(subdir), name, false)
	if err != nil {
		return "", err
	}
	opts.Observe = w.observer(opts.Observe)
	return codec.WriteJSON(t, path, opts)
}

// LoadTableJSON reads a split-orientation JSON table from subdir (default
// results).
func (w *Workspace) LoadTableJSON(name, subdir string, opts codec.JSONReadOptions) (*table.Table, error) {
	path, err := w.Resolve(defaultSubdir(subdir), name, false)
	if err != nil {
		return nil, err
	}
	opts.Observe = w.observer(opts.Observe)
	return codec.ReadJSON(path, opts)
}

// observer wires codec events to the workspace logger, then to the
// workspace-level observer and finally to the per-call one.
func (w *Workspace) observer(next codec.Observer) codec.Observer {
	return func(e codec.Event) {
		attrs := []any{
			slog.String("op", e.Op),
			slog.String("path", e.Path),
			slog.Int("rows", e.Rows),
			slog.Int("cols", e.Cols),
			slog.Duration("elapsed", e.Elapsed),
		}
		if e.Bytes > 0 {
			attrs = append(attrs, slog.String("size", humanize.Bytes(uint64(e.Bytes))))
		}
		w.logger.Info("table io", attrs...)

		if w.observe != nil {
			w.observe(e)
		}
		if next != nil {
			next(e)
		}
	}
}

func defaultSubdir(subdir string) string {
	if subdir == "" {
		return ResultsSubdir
	}
	return subdir
}
