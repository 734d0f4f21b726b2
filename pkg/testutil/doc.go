// Package testutil provides helpers shared by npaths tests.
//
// Filesystem tests run on an in-memory afero tree built with MemoryTree;
// tests that need the real OS use t.TempDir and WriteTree.
package testutil
