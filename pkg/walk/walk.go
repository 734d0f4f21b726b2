// Package walk visits the files or directories below a path, up to a
// maximum depth, in lexical pre-order.
package walk

import (
	"errors"
	"io/fs"
	"path"

	"github.com/bmatcuk/doublestar/v4"

	npathserrors "github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/logging"
	"github.com/arthur-debert/npaths/pkg/types"
)

// Unlimited disables the depth limit
const Unlimited = -1

// VisitFunc is called for each visited entry. Returning fs.SkipDir skips
// the rest of the current directory (or, for a visited directory, its
// subtree); fs.SkipAll ends the walk without error. Any other error ends
// the walk and is returned unchanged.
type VisitFunc func(p types.Path, info fs.FileInfo) error

// Options configures Walk
type Options struct {
	// MaxDepth limits recursion; negative means unlimited.
	// For files, 0 visits the files directly inside the start directory.
	// For directories, 0 visits the start directory only.
	MaxDepth int

	// Dirs visits directories instead of files
	Dirs bool

	// Match, when set, is a doublestar pattern matched against the
	// slash-separated path of each entry relative to the start directory.
	// Entries that do not match are not visited but are still descended.
	// The start directory itself is always visited in Dirs mode. A start
	// that is a file is matched by its name.
	Match string
}

// Files visits the regular files below start. A start that is itself a
// file is the only one visited.
func Files(fsys types.FS, start types.Path, maxDepth int, visit VisitFunc) error {
	return Walk(fsys, start, Options{MaxDepth: maxDepth}, visit)
}

// Directories visits start and the directories below it
func Directories(fsys types.FS, start types.Path, maxDepth int, visit VisitFunc) error {
	return Walk(fsys, start, Options{MaxDepth: maxDepth, Dirs: true}, visit)
}

// Walk visits the entries below start selected by opts
func Walk(fsys types.FS, start types.Path, opts Options, visit VisitFunc) error {
	if fsys == nil || start == nil || visit == nil {
		return npathserrors.New(npathserrors.ErrInvalidInput, "walk needs a filesystem, a start path and a visit function")
	}
	if opts.Match != "" && !doublestar.ValidatePattern(opts.Match) {
		return npathserrors.Newf(npathserrors.ErrInvalidInput, "invalid match pattern: %s", opts.Match).
			WithDetail("pattern", opts.Match)
	}

	w := &walker{fsys: fsys, opts: opts, visit: visit}
	logger := logging.GetLogger("walk")
	logger.Trace().
		Str("start", start.String()).
		Int("maxDepth", opts.MaxDepth).
		Bool("dirs", opts.Dirs).
		Str("match", opts.Match).
		Msg("Walk started")

	var err error
	if opts.Dirs {
		err = w.startDirectories(start)
	} else {
		err = w.startFiles(start)
	}
	if errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

type walker struct {
	fsys  types.FS
	opts  Options
	visit VisitFunc
}

// within reports whether entries at depth may be visited
func (w *walker) within(depth int) bool {
	return w.opts.MaxDepth < 0 || depth <= w.opts.MaxDepth
}

func (w *walker) matches(rel string) bool {
	if w.opts.Match == "" {
		return true
	}
	ok, err := doublestar.Match(w.opts.Match, rel)
	return err == nil && ok
}

// files visits the files of dir, which sits depth levels below start
func (w *walker) files(dir types.Path, rel string, depth int) error {
	entries, err := w.fsys.ReadDir(dir.String())
	if err != nil {
		return err
	}

	for _, entry := range entries {
		child := dir.ResolveName(entry.Name())
		childRel := path.Join(rel, entry.Name())

		if entry.IsDir() {
			if !w.within(depth + 1) {
				continue
			}
			if err := w.files(child, childRel, depth+1); err != nil {
				return err
			}
			continue
		}

		if !w.matches(childRel) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if err := w.visit(child, info); err != nil {
			if errors.Is(err, fs.SkipDir) {
				return nil
			}
			return err
		}
	}
	return nil
}

// startFiles walks start, or visits it alone when it is not a directory
func (w *walker) startFiles(start types.Path) error {
	info, err := w.fsys.Stat(start.String())
	if err != nil {
		return err
	}
	if info.IsDir() {
		return w.files(start, "", 0)
	}
	name := ""
	if fn := start.FileName(); fn != nil {
		name = fn.String()
	}
	if !w.matches(name) {
		return nil
	}
	if err := w.visit(start, info); err != nil && !errors.Is(err, fs.SkipDir) {
		return err
	}
	return nil
}

func (w *walker) startDirectories(start types.Path) error {
	info, err := w.fsys.Stat(start.String())
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return npathserrors.Newf(npathserrors.ErrInvalidInput, "not a directory: %s", start.String()).
			WithDetail("path", start.String())
	}
	if err := w.visit(start, info); err != nil {
		if errors.Is(err, fs.SkipDir) {
			return nil
		}
		return err
	}
	return w.directories(start, "", 0)
}

// directories visits the subdirectories of dir, which sits depth levels
// below start
func (w *walker) directories(dir types.Path, rel string, depth int) error {
	if !w.within(depth + 1) {
		return nil
	}
	entries, err := w.fsys.ReadDir(dir.String())
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		child := dir.ResolveName(entry.Name())
		childRel := path.Join(rel, entry.Name())

		if w.matches(childRel) {
			info, err := entry.Info()
			if err != nil {
				return err
			}
			if err := w.visit(child, info); err != nil {
				if errors.Is(err, fs.SkipDir) {
					continue
				}
				return err
			}
		}
		if err := w.directories(child, childRel, depth+1); err != nil {
			return err
		}
	}
	return nil
}
