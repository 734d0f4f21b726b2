// Package paths manipulates file names and path prefixes on top of
// types.Path.
//
// # Extensions
//
// IndexOfExtension locates the extension of a file name under an
// ExtensionSpec. DotCount picks how many dot-separated components belong
// to the extension:
//
//	name          DotCount=1  DotCount=2  DotCount=0 (all)
//	a.tar.gz      gz          tar.gz      tar.gz
//	a.txt         txt         (none)      txt
//	a             (none)      (none)      (none)
//
// With Fuzzy set, a name with fewer dots than DotCount falls back to the
// longest extension it has, so "a.txt" under DotCount=2 yields "txt".
//
// # Rewriting
//
// NewFileName builds a sibling of a path from a RewriteSpec:
//
//	prefix + base + insert + extension + suffix
//
// ReplaceExtension, RemoveExtension, PrependFileName, AppendFileName and
// InsertFileName are shorthands for the common cases.
//
// # Prefixes
//
// NewPrefixes enumerates the ancestors of a path from its root down,
// either as cumulative paths (FullPath), single segments (NameOnly) or
// cumulative paths that exist on a filesystem (ExistOnly):
//
//	ps, _ := paths.NewPrefixes(paths.Get("/a/b"), paths.PrefixOptions{})
//	for p := range ps.All() {
//		fmt.Println(p) // "/", "/a", "/a/b"
//	}
package paths
