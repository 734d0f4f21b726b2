// Package types defines the interfaces shared across npaths: Path, the
// immutable hierarchical path value, and FS, the read-only filesystem the
// prefix iterator, the walker and the text reader consult.
package types
