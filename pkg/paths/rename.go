package paths

import (
	"strings"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/types"
)

// RewriteSpec describes a new file name built around an existing one:
//
//	Prefix + base + Insert + extension + Suffix
//
// Empty Prefix, Insert and Suffix are no-ops. A nil Extension keeps the
// original extension, an empty one removes it, and any other value replaces
// it (a leading dot is added when missing). Ext locates the extension.
type RewriteSpec struct {
	Prefix    string
	Insert    string
	Extension *string
	Suffix    string
	Ext       ExtensionSpec
}

// Ext returns a pointer to ext, for RewriteSpec.Extension
func Ext(ext string) *string {
	return &ext
}

// IsNoop reports whether the spec leaves every file name unchanged
func (s RewriteSpec) IsNoop() bool {
	return s.Prefix == "" && s.Insert == "" && s.Extension == nil && s.Suffix == ""
}

// normalizedExtension returns the replacement extension including its dot
func (s RewriteSpec) normalizedExtension() string {
	if s.Extension == nil || *s.Extension == "" {
		return ""
	}
	if strings.HasPrefix(*s.Extension, ".") {
		return *s.Extension
	}
	return "." + *s.Extension
}

// NewFileName rewrites the file name of p according to spec and returns the
// resulting sibling of p. A no-op spec returns p itself. When p has no
// segments (a root or the empty path) the new name is resolved as a child
// of p instead.
//
// The only error is ErrInvalidInput for a nil p.
func NewFileName(p types.Path, spec RewriteSpec) (types.Path, error) {
	if p == nil {
		return nil, errors.New(errors.ErrInvalidInput, "path is nil")
	}
	if spec.IsNoop() {
		return p, nil
	}

	ext := spec.normalizedExtension()

	var sb strings.Builder
	sb.WriteString(spec.Prefix)

	if p.NameCount() == 0 {
		sb.WriteString(spec.Insert)
		sb.WriteString(ext)
		sb.WriteString(spec.Suffix)
		return p.ResolveName(sb.String()), nil
	}

	name := FileName(p)
	if spec.Extension == nil && spec.Insert == "" {
		// nothing goes between base and extension
		sb.WriteString(name)
	} else {
		index := IndexOfExtension(name, spec.Ext)
		if index == NoExtension {
			sb.WriteString(name)
		} else {
			sb.WriteString(name[:index])
		}
		sb.WriteString(spec.Insert)
		if spec.Extension != nil {
			sb.WriteString(ext)
		} else if index != NoExtension {
			sb.WriteString(name[index:])
		}
	}
	sb.WriteString(spec.Suffix)

	return p.ResolveSibling(sb.String()), nil
}

// ReplaceExtension replaces the last extension of p with ext.
// An empty ext removes the extension.
func ReplaceExtension(p types.Path, ext string) (types.Path, error) {
	return ReplaceExtensionOf(p, ext, LastDot)
}

// ReplaceExtensionOf replaces the extension of p located by spec with ext.
// A name without an extension under spec gets ext appended.
func ReplaceExtensionOf(p types.Path, ext string, spec ExtensionSpec) (types.Path, error) {
	return NewFileName(p, RewriteSpec{Extension: Ext(ext), Ext: spec})
}

// RemoveExtension drops the last extension of p
func RemoveExtension(p types.Path) (types.Path, error) {
	return RemoveExtensionOf(p, LastDot)
}

// RemoveExtensionOf drops the extension of p located by spec. Paths without
// segments are returned unchanged.
func RemoveExtensionOf(p types.Path, spec ExtensionSpec) (types.Path, error) {
	if p != nil && p.NameCount() == 0 {
		return p, nil
	}
	return NewFileName(p, RewriteSpec{Extension: Ext(""), Ext: spec})
}

// PrependFileName adds s in front of p's file name
func PrependFileName(p types.Path, s string) (types.Path, error) {
	return NewFileName(p, RewriteSpec{Prefix: s, Ext: LastDot})
}

// AppendFileName adds s after p's file name, extension included
func AppendFileName(p types.Path, s string) (types.Path, error) {
	return NewFileName(p, RewriteSpec{Suffix: s, Ext: LastDot})
}

// InsertFileName inserts s before the last extension of p
func InsertFileName(p types.Path, s string) (types.Path, error) {
	return InsertFileNameOf(p, s, LastDot)
}

// InsertFileNameOf inserts s before the extension of p located by spec.
// When there is no extension under spec, s is appended.
func InsertFileNameOf(p types.Path, s string, spec ExtensionSpec) (types.Path, error) {
	return NewFileName(p, RewriteSpec{Insert: s, Ext: spec})
}
