package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/root/b", 0755))
	require.NoError(t, afero.WriteFile(mem, "/root/c.txt", []byte("c"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/root/a.txt", []byte("a"), 0644))

	fsys := NewAferoFS(mem)

	info, err := fsys.Stat("/root/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := fsys.ReadDir("/root")
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Equal(t, []string{"a.txt", "b", "c.txt"}, names)
	assert.True(t, entries[1].IsDir())

	f, err := fsys.Open("/root/a.txt")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	_, err = fsys.Open("/root/b")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	_, err = fsys.Stat("/nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0644))

	fsys := NewOS()
	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f.txt", entries[0].Name())

	f, err := fsys.Open(filepath.Join(dir, "f.txt"))
	require.NoError(t, err)
	assert.NoError(t, f.Close())
}

func TestExists(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/a/b.txt", []byte("b"), 0644))
	fsys := NewAferoFS(mem)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"file", "/a/b.txt", true},
		{"directory", "/a", true},
		{"root", "/", true},
		{"missing", "/a/c", false},
		{"missing parent", "/x/y", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Exists(fsys, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type failingFS struct{ afero.Fs }

func (failingFS) Stat(string) (os.FileInfo, error) { return nil, fs.ErrPermission }

func TestExistsPropagatesErrors(t *testing.T) {
	_, err := Exists(NewAferoFS(failingFS{afero.NewMemMapFs()}), "/a")
	assert.ErrorIs(t, err, fs.ErrPermission)
}
