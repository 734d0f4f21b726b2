package paths

import (
	"strings"

	"github.com/arthur-debert/npaths/pkg/types"
)

// NoExtension is returned by IndexOfExtension when a name has no extension
const NoExtension = -1

// ExtensionSpec selects how many dot-separated components make up an extension.
//
//   - DotCount <= 0: every trailing component ("a.tar.gz" -> "tar.gz")
//   - DotCount == 1: the text after the last dot
//   - DotCount == k: the last k components
//
// When a name has fewer than DotCount dots, Fuzzy falls back to the longest
// extension available instead of reporting none. Fuzzy has no effect when
// DotCount is 1.
type ExtensionSpec struct {
	DotCount int
	Fuzzy    bool
}

// LastDot is the common single-extension spec
var LastDot = ExtensionSpec{DotCount: 1}

// AllDots treats everything after the first dot as the extension
var AllDots = ExtensionSpec{DotCount: 0}

// IndexOfExtension returns the index of the dot that starts the extension
// of name, so that name[i+1:] is the extension. It returns NoExtension when
// name has no extension under spec.
func IndexOfExtension(name string, spec ExtensionSpec) int {
	if spec.DotCount == 1 {
		return strings.LastIndexByte(name, '.')
	}

	bounded := spec.DotCount > 0
	last := len(name)
	for i := 0; !bounded || i < spec.DotCount; i++ {
		index := strings.LastIndexByte(name[:last], '.')
		if index == NoExtension {
			if i == 0 || (bounded && !spec.Fuzzy) {
				return NoExtension
			}
			return last
		}
		last = index
	}
	return last
}

// FileName returns the last segment of p, or "" when p is nil, empty or a root
func FileName(p types.Path) string {
	if p == nil {
		return ""
	}
	name := p.FileName()
	if name == nil {
		return ""
	}
	return name.String()
}

// Extension returns the text after the last dot of p's file name
func Extension(p types.Path) string {
	return ExtensionOf(p, LastDot)
}

// ExtensionOf returns the extension of p's file name under spec, without
// its leading dot. A name without an extension yields "".
func ExtensionOf(p types.Path, spec ExtensionSpec) string {
	name := FileName(p)
	index := IndexOfExtension(name, spec)
	if index == NoExtension {
		return ""
	}
	return name[index+1:]
}

// FileNameWithoutExtension returns p's file name up to its last dot
func FileNameWithoutExtension(p types.Path) string {
	return FileNameWithoutExtensionOf(p, LastDot)
}

// FileNameWithoutExtensionOf returns p's file name with its extension under
// spec, and the dot before it, removed
func FileNameWithoutExtensionOf(p types.Path, spec ExtensionSpec) string {
	name := FileName(p)
	index := IndexOfExtension(name, spec)
	if index == NoExtension {
		return name
	}
	return name[:index]
}
