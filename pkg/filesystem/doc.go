// Package filesystem provides the read-only filesystem backends used by
// npaths: the OS filesystem and any afero.Fs (in-memory trees in tests).
package filesystem
