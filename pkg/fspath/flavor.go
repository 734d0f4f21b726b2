package fspath

import (
	"runtime"
	"strings"
)

// Flavor holds the syntax rules of a family of paths: how roots are
// recognised, which bytes separate segments and how names compare.
type Flavor interface {
	// Name identifies the flavor ("posix" or "windows")
	Name() string

	// SplitRoot returns the canonical root of s ("" when s is relative)
	// and the remainder of s after the root
	SplitRoot(s string) (root, rest string)

	// IsSeparator reports whether c separates segments
	IsSeparator(c byte) bool

	// Separator is used when rendering a path
	Separator() string

	// EqualNames compares two segments or roots
	EqualNames(a, b string) bool
}

var (
	// Posix paths: "/" root, "/" separator, case-sensitive
	Posix Flavor = posixFlavor{}

	// Windows paths: drive ("C:\"), UNC ("\\server\share\") or "\" roots,
	// "\" and "/" separators, case-insensitive
	Windows Flavor = windowsFlavor{}
)

// Native returns the flavor of the host operating system
func Native() Flavor {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

type posixFlavor struct{}

func (posixFlavor) Name() string { return "posix" }

func (posixFlavor) SplitRoot(s string) (string, string) {
	if strings.HasPrefix(s, "/") {
		return "/", s[1:]
	}
	return "", s
}

func (posixFlavor) IsSeparator(c byte) bool { return c == '/' }

func (posixFlavor) Separator() string { return "/" }

func (posixFlavor) EqualNames(a, b string) bool { return a == b }

type windowsFlavor struct{}

func (windowsFlavor) Name() string { return "windows" }

func (w windowsFlavor) SplitRoot(s string) (string, string) {
	switch {
	case len(s) >= 2 && isDriveLetter(s[0]) && s[1] == ':':
		// Drive-relative paths ("C:foo") are not modelled; the drive is always a root
		return s[:2] + `\`, s[2:]

	case len(s) >= 2 && w.IsSeparator(s[0]) && w.IsSeparator(s[1]):
		server, rest := w.cutSegment(s[2:])
		share, rest := w.cutSegment(rest)
		if server == "" || share == "" {
			return `\`, s[2:]
		}
		return `\\` + server + `\` + share + `\`, rest

	case len(s) >= 1 && w.IsSeparator(s[0]):
		return `\`, s[1:]
	}
	return "", s
}

func (windowsFlavor) IsSeparator(c byte) bool { return c == '\\' || c == '/' }

func (windowsFlavor) Separator() string { return `\` }

func (windowsFlavor) EqualNames(a, b string) bool { return strings.EqualFold(a, b) }

// cutSegment splits s at its first separator
func (w windowsFlavor) cutSegment(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if w.IsSeparator(s[i]) {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
