// Package fspath provides the default types.Path implementation: an
// immutable root plus segment list, parsed and rendered by a Flavor.
//
// Parsing drops empty segments, so "a//b/" and "a/b" are the same path,
// but "." and ".." are kept until Normalize is called.
package fspath

import (
	"os"
	"strings"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/types"
)

// Path is a value implementing types.Path
type Path struct {
	flavor Flavor
	root   string
	names  []string
}

var _ types.Path = Path{}

// Parse splits s according to flavor
func Parse(flavor Flavor, s string) Path {
	if flavor == nil {
		flavor = Native()
	}
	root, rest := flavor.SplitRoot(s)

	var names []string
	start := 0
	for i := 0; i <= len(rest); i++ {
		if i == len(rest) || flavor.IsSeparator(rest[i]) {
			if i > start {
				names = append(names, rest[start:i])
			}
			start = i + 1
		}
	}
	return Path{flavor: flavor, root: root, names: names}
}

// New joins first and more into a native path
func New(first string, more ...string) Path {
	p := Parse(Native(), first)
	for _, m := range more {
		p = p.join(Parse(p.flavor, m))
	}
	return p
}

// Empty returns the empty path of a flavor
func Empty(flavor Flavor) Path {
	return Parse(flavor, "")
}

// Flavor returns the syntax rules of p
func (p Path) Flavor() Flavor {
	if p.flavor == nil {
		return Native()
	}
	return p.flavor
}

// Segments returns a copy of the names of p, excluding the root
func (p Path) Segments() []string {
	return append([]string(nil), p.names...)
}

func (p Path) Root() types.Path {
	if p.root == "" {
		return nil
	}
	return Path{flavor: p.flavor, root: p.root}
}

func (p Path) IsAbs() bool { return p.root != "" }

func (p Path) NameCount() int { return len(p.names) }

// Name panics when i is out of range, like slice indexing
func (p Path) Name(i int) types.Path {
	return Path{flavor: p.flavor, names: p.names[i : i+1 : i+1]}
}

func (p Path) FileName() types.Path {
	if len(p.names) == 0 {
		return nil
	}
	return p.Name(len(p.names) - 1)
}

func (p Path) Parent() types.Path {
	n := len(p.names)
	if n == 0 || (n == 1 && p.root == "") {
		return nil
	}
	return Path{flavor: p.flavor, root: p.root, names: p.names[: n-1 : n-1]}
}

func (p Path) Subpath(begin, end int) types.Path {
	return Path{flavor: p.flavor, names: p.names[begin:end:end]}
}

func (p Path) Resolve(other types.Path) types.Path {
	if other == nil {
		return p
	}
	if other.IsAbs() {
		return other
	}
	return p.join(p.coerce(other))
}

func (p Path) ResolveName(name string) types.Path {
	return p.Resolve(Parse(p.Flavor(), name))
}

func (p Path) ResolveSibling(name string) types.Path {
	sibling := Parse(p.Flavor(), name)
	parent := p.Parent()
	if parent == nil || sibling.IsAbs() {
		return sibling
	}
	return parent.Resolve(sibling)
}

// Relativize fails when exactly one of p and other is absolute, or when
// their roots differ
func (p Path) Relativize(other types.Path) (types.Path, error) {
	o := p.coerce(other)
	if p.IsAbs() != o.IsAbs() {
		return nil, errors.Newf(errors.ErrPathMismatch,
			"cannot relativize %q against %q: one path is absolute", o.String(), p.String()).
			WithDetail("base", p.String()).
			WithDetail("path", o.String())
	}
	if p.IsAbs() && !p.Flavor().EqualNames(p.root, o.root) {
		return nil, errors.Newf(errors.ErrPathMismatch,
			"cannot relativize %q against %q: different roots", o.String(), p.String())
	}
	if len(p.names) == 0 && !p.IsAbs() {
		return Path{flavor: p.flavor, names: o.names}, nil
	}

	common := 0
	for common < len(p.names) && common < len(o.names) &&
		p.Flavor().EqualNames(p.names[common], o.names[common]) {
		common++
	}

	names := make([]string, 0, len(p.names)-common+len(o.names)-common)
	for i := common; i < len(p.names); i++ {
		names = append(names, "..")
	}
	names = append(names, o.names[common:]...)
	return Path{flavor: p.flavor, names: names}, nil
}

func (p Path) Abs() (types.Path, error) {
	if p.IsAbs() {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Parse(p.Flavor(), wd).join(p), nil
}

func (p Path) Normalize() types.Path {
	names := make([]string, 0, len(p.names))
	for _, name := range p.names {
		switch {
		case name == ".":
		case name == ".." && len(names) > 0 && names[len(names)-1] != "..":
			names = names[:len(names)-1]
		case name == ".." && p.root != "":
			// ".." above the root stays at the root
		default:
			names = append(names, name)
		}
	}
	return Path{flavor: p.flavor, root: p.root, names: names}
}

func (p Path) Equal(other types.Path) bool {
	if other == nil {
		return false
	}
	o, ok := other.(Path)
	if !ok {
		return p.String() == other.String()
	}
	f := p.Flavor()
	if f.Name() != o.Flavor().Name() || len(p.names) != len(o.names) {
		return false
	}
	if !f.EqualNames(p.root, o.root) {
		return false
	}
	for i := range p.names {
		if !f.EqualNames(p.names[i], o.names[i]) {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	return p.root + strings.Join(p.names, p.Flavor().Separator())
}

// MarshalText renders the path for encoders (JSON, YAML)
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// join appends the segments of a relative path
func (p Path) join(o Path) Path {
	if o.IsAbs() {
		return o
	}
	if len(o.names) == 0 {
		return p
	}
	names := make([]string, 0, len(p.names)+len(o.names))
	names = append(names, p.names...)
	names = append(names, o.names...)
	return Path{flavor: p.flavor, root: p.root, names: names}
}

// coerce converts any types.Path into a Path of p's flavor
func (p Path) coerce(other types.Path) Path {
	if o, ok := other.(Path); ok {
		return o
	}
	if other == nil {
		return Empty(p.Flavor())
	}
	return Parse(p.Flavor(), other.String())
}
