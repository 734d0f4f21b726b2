package paths

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/filesystem"
	"github.com/arthur-debert/npaths/pkg/logging"
	"github.com/arthur-debert/npaths/pkg/types"
)

// IterMode selects what a prefix iteration yields at each position
type IterMode int

const (
	// FullPath yields the cumulative path: "/", "/a", "/a/b", ...
	FullPath IterMode = iota
	// NameOnly yields the single segment: "/", "a", "b", ...
	NameOnly
	// ExistOnly yields cumulative paths up to the first one missing on disk
	ExistOnly
)

// String returns the flag name of the mode
func (m IterMode) String() string {
	switch m {
	case FullPath:
		return "full"
	case NameOnly:
		return "name"
	case ExistOnly:
		return "exist"
	default:
		return fmt.Sprintf("IterMode(%d)", int(m))
	}
}

// ParseIterMode parses the names produced by IterMode.String
func ParseIterMode(s string) (IterMode, error) {
	switch strings.ToLower(s) {
	case "full", "full-path", "":
		return FullPath, nil
	case "name", "name-only":
		return NameOnly, nil
	case "exist", "exist-only":
		return ExistOnly, nil
	default:
		return FullPath, errors.Newf(errors.ErrInvalidInput, "unknown iteration mode: %s", s)
	}
}

// PrefixOptions configures NewPrefixes
type PrefixOptions struct {
	Mode IterMode

	// Start is the first position yielded; position 0 is the root when
	// the path has one
	Start int

	// FS answers existence checks in ExistOnly mode (default: the OS)
	FS types.FS
}

// Prefixes is a finite, replayable sequence of the ancestors of a path.
// Its length is fixed when it is built; ranging over All twice yields the
// same values.
type Prefixes struct {
	path    types.Path
	hasRoot bool
	mode    IterMode
	start   int
	size    int
}

// NewPrefixes builds the prefix sequence of p. A negative Start fails with
// ErrInvalidInput and a nil p yields an empty sequence.
//
// In ExistOnly mode every prefix is checked once, here, from position 0
// upward; the sequence stops before the first prefix that does not exist.
// Errors other than "not exist" are returned unchanged.
func NewPrefixes(p types.Path, opts PrefixOptions) (*Prefixes, error) {
	if opts.Start < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "startIndex < 0: %d", opts.Start).
			WithDetail("startIndex", opts.Start)
	}

	ps := &Prefixes{path: p, mode: opts.Mode}
	if p != nil {
		ps.hasRoot = p.Root() != nil
		ps.size = p.NameCount()
		if ps.hasRoot {
			ps.size++
		}
	}

	if opts.Mode == ExistOnly && ps.size > 0 {
		fsys := opts.FS
		if fsys == nil {
			fsys = filesystem.NewOS()
		}
		size, err := ps.existingCount(fsys)
		if err != nil {
			return nil, err
		}
		ps.size = size
	}

	ps.start = min(opts.Start, ps.size)
	return ps, nil
}

// existingCount returns the number of leading prefixes present on fsys
func (ps *Prefixes) existingCount(fsys types.FS) (int, error) {
	logger := logging.GetLogger("paths.prefixes")
	for i := 0; i < ps.size; i++ {
		prefix := ps.prefix(i)
		exists, err := filesystem.Exists(fsys, prefix.String())
		if err != nil {
			return 0, err
		}
		if !exists {
			logger.Trace().
				Str("path", ps.path.String()).
				Str("missing", prefix.String()).
				Int("count", i).
				Msg("Existing prefixes truncated")
			return i, nil
		}
	}
	return ps.size, nil
}

// Len returns the number of values yielded by All
func (ps *Prefixes) Len() int {
	return ps.size - ps.start
}

// All yields the prefixes from the start position to the full path
func (ps *Prefixes) All() iter.Seq[types.Path] {
	return func(yield func(types.Path) bool) {
		for i := ps.start; i < ps.size; i++ {
			if !yield(ps.at(i)) {
				return
			}
		}
	}
}

// Collect returns the prefixes as a slice
func (ps *Prefixes) Collect() []types.Path {
	out := make([]types.Path, 0, ps.Len())
	for p := range ps.All() {
		out = append(out, p)
	}
	return out
}

func (ps *Prefixes) at(i int) types.Path {
	if ps.mode == NameOnly {
		return ps.name(i)
	}
	return ps.prefix(i)
}

// prefix returns the root joined with the segments up to position i
func (ps *Prefixes) prefix(i int) types.Path {
	if !ps.hasRoot {
		return ps.path.Subpath(0, i+1)
	}
	root := ps.path.Root()
	if i == 0 {
		return root
	}
	return root.Resolve(ps.path.Subpath(0, i))
}

// name returns the root or the single segment at position i
func (ps *Prefixes) name(i int) types.Path {
	if !ps.hasRoot {
		return ps.path.Name(i)
	}
	if i == 0 {
		return ps.path.Root()
	}
	return ps.path.Name(i - 1)
}

// Iterate returns every prefix of p in the given mode. Existence checks
// use the OS filesystem.
func Iterate(p types.Path, mode IterMode) (*Prefixes, error) {
	return NewPrefixes(p, PrefixOptions{Mode: mode})
}

// ForEach calls fn with each prefix of p from position start. A nil p or fn
// does nothing.
func ForEach(p types.Path, start int, mode IterMode, fn func(types.Path)) error {
	if p == nil || fn == nil {
		return nil
	}
	ps, err := NewPrefixes(p, PrefixOptions{Mode: mode, Start: start})
	if err != nil {
		return err
	}
	for prefix := range ps.All() {
		fn(prefix)
	}
	return nil
}
