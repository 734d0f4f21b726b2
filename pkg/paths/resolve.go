package paths

import (
	"os"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/fspath"
	"github.com/arthur-debert/npaths/pkg/types"
)

// Get parses s as a native path
func Get(s string, more ...string) types.Path {
	return fspath.New(s, more...)
}

// Parent returns the parent of p, or the empty path when p has none
func Parent(p types.Path) (types.Path, error) {
	if p == nil {
		return nil, errors.New(errors.ErrInvalidInput, "path is nil")
	}
	if parent := p.Parent(); parent != nil {
		return parent, nil
	}
	return emptyLike(p), nil
}

// Resolve resolves p against parent. A nil parent or an absolute p
// returns p.
func Resolve(parent, p types.Path) (types.Path, error) {
	if p == nil {
		return nil, errors.New(errors.ErrInvalidInput, "path is nil")
	}
	if parent == nil || p.IsAbs() {
		return p, nil
	}
	return parent.Resolve(p), nil
}

// ResolveString parses s with parent's syntax (native when parent is nil)
// and resolves it against parent
func ResolveString(parent types.Path, s string) (types.Path, error) {
	return Resolve(parent, parseLike(parent, s))
}

// Sibling resolves p against the parent of sibling. A nil sibling or an
// absolute p returns p.
func Sibling(sibling, p types.Path) (types.Path, error) {
	if p == nil {
		return nil, errors.New(errors.ErrInvalidInput, "path is nil")
	}
	if sibling == nil || p.IsAbs() {
		return p, nil
	}
	parent := sibling.Parent()
	if parent == nil {
		return p, nil
	}
	return parent.Resolve(p), nil
}

// SiblingString parses s with sibling's syntax and resolves it as a sibling
func SiblingString(sibling types.Path, s string) (types.Path, error) {
	return Sibling(sibling, parseLike(sibling, s))
}

// Relativize returns the path leading from base to p. When exactly one of
// them is absolute the other is made absolute against the working
// directory first; when their roots differ the absolute p is returned.
func Relativize(base, p types.Path) (types.Path, error) {
	if base == nil || p == nil {
		return nil, errors.New(errors.ErrInvalidInput, "path is nil")
	}

	if base.IsAbs() {
		abs, err := p.Abs()
		if err != nil {
			return nil, err
		}
		if !sameRoot(base, abs) {
			return abs, nil
		}
		return base.Relativize(abs)
	}

	if !p.IsAbs() {
		return base.Relativize(p)
	}
	abs, err := base.Abs()
	if err != nil {
		return nil, err
	}
	if !sameRoot(abs, p) {
		return p, nil
	}
	return abs.Relativize(p)
}

// sameRoot compares the roots of two absolute paths
func sameRoot(a, b types.Path) bool {
	return a.Root().Equal(b.Root())
}

// parseLike parses s with the syntax of like, or natively when like is nil
func parseLike(like types.Path, s string) types.Path {
	if p, ok := like.(fspath.Path); ok {
		return fspath.Parse(p.Flavor(), s)
	}
	if like != nil {
		return like.Subpath(0, 0).ResolveName(s)
	}
	return fspath.New(s)
}

// emptyLike returns the empty path with the syntax of like
func emptyLike(like types.Path) types.Path {
	return parseLike(like, "")
}

// CurrentDirectory returns the absolute working directory
func CurrentDirectory() (types.Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return fspath.New(wd), nil
}

// CurrentDirectoryName returns the last segment of the working directory
func CurrentDirectoryName() (string, error) {
	wd, err := CurrentDirectory()
	if err != nil {
		return "", err
	}
	return FileName(wd), nil
}

// IsCurrentDirectory reports whether p, made absolute and normalized, is the
// working directory. A nil p is never the working directory.
func IsCurrentDirectory(p types.Path) bool {
	if p == nil {
		return false
	}
	wd, err := CurrentDirectory()
	if err != nil {
		return false
	}
	abs, err := p.Abs()
	if err != nil {
		return false
	}
	return wd.Equal(abs.Normalize())
}
