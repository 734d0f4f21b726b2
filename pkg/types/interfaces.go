package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface required by npaths.
// Nothing in the library ever mutates the filesystem.
type FS interface {
	// Stat returns file info; a missing file yields an error matching fs.ErrNotExist
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists a directory sorted by file name
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens a file for reading
	Open(name string) (fs.File, error)
}

// Path is a hierarchical path value: an optional root followed by zero or
// more name segments. It need not refer to an existing file.
//
// Implementations are immutable; every method returns a new value.
// A path has a root if and only if it is absolute, and segments never
// contain a separator.
type Path interface {
	// Root returns the root component, or nil for a relative path
	Root() Path
	IsAbs() bool

	// NameCount is the number of segments, not counting the root
	NameCount() int
	// Name returns segment i as a single-segment relative path
	Name(i int) Path
	// FileName returns the last segment, or nil when there are no segments
	FileName() Path
	// Parent returns the path without its last segment, or nil when there is none
	Parent() Path
	// Subpath returns the relative path made of segments [begin, end)
	Subpath(begin, end int) Path

	// Resolve appends other to this path; an absolute other is returned as is
	Resolve(other Path) Path
	// ResolveName parses name with this path's syntax and resolves it
	ResolveName(name string) Path
	// ResolveSibling resolves name against the parent of this path
	ResolveSibling(name string) Path
	// Relativize builds the relative path leading from this path to other
	Relativize(other Path) (Path, error)

	// Abs resolves a relative path against the working directory
	Abs() (Path, error)
	// Normalize removes "." segments and folds "name/.." pairs
	Normalize() Path

	Equal(other Path) bool
	String() string
}
