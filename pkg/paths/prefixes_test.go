package paths

import (
	"bytes"
	"io/fs"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/filesystem"
	"github.com/arthur-debert/npaths/pkg/types"
)

func strs(ps []types.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		path     types.Path
		mode     IterMode
		start    int
		expected []string
	}{
		{"names rooted", posix("/a/b/c/d"), NameOnly, 0, []string{"/", "a", "b", "c", "d"}},
		{"full rooted", posix("/a/b/c"), FullPath, 0, []string{"/", "/a", "/a/b", "/a/b/c"}},
		{"names relative", posix("a/b/c"), NameOnly, 0, []string{"a", "b", "c"}},
		{"full relative", posix("a/b/c"), FullPath, 0, []string{"a", "a/b", "a/b/c"}},
		{"full from start", posix("/a/b/c"), FullPath, 2, []string{"/a/b", "/a/b/c"}},
		{"names from start", posix("a/b/c"), NameOnly, 1, []string{"b", "c"}},
		{"start at end", posix("a/b"), FullPath, 2, []string{}},
		{"start past end", posix("/a/b"), FullPath, 10, []string{}},
		{"root only", posix("/"), FullPath, 0, []string{"/"}},
		{"empty path", posix(""), NameOnly, 0, []string{}},
		{"nil path", nil, FullPath, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := NewPrefixes(tt.path, PrefixOptions{Mode: tt.mode, Start: tt.start})
			require.NoError(t, err)
			assert.Equal(t, len(tt.expected), ps.Len())
			assert.Equal(t, tt.expected, strs(ps.Collect()))
		})
	}
}

func TestPrefixesCount(t *testing.T) {
	for _, s := range []string{"a", "a/b/c/d/e", "/x", "/x/y/z"} {
		p := posix(s)
		want := p.NameCount()
		if p.IsAbs() {
			want++
		}
		for _, mode := range []IterMode{FullPath, NameOnly} {
			ps, err := NewPrefixes(p, PrefixOptions{Mode: mode})
			require.NoError(t, err)
			assert.Len(t, ps.Collect(), want, "%s %s", s, mode)
		}
	}
}

func TestPrefixesNegativeStart(t *testing.T) {
	_, err := NewPrefixes(posix("/a"), PrefixOptions{Start: -1})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = NewPrefixes(nil, PrefixOptions{Start: -1})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPrefixesReplay(t *testing.T) {
	ps, err := NewPrefixes(posix("/a/b"), PrefixOptions{})
	require.NoError(t, err)

	first := strs(ps.Collect())
	second := strs(ps.Collect())
	assert.Equal(t, first, second)

	// stopping early does not disturb later runs
	for range ps.All() {
		break
	}
	assert.Equal(t, first, strs(ps.Collect()))
}

func TestPrefixesExistOnly(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/a/b", 0755))
	require.NoError(t, afero.WriteFile(mem, "/a/b/f.txt", nil, 0644))
	fsys := filesystem.NewAferoFS(mem)

	tests := []struct {
		name     string
		path     string
		start    int
		expected []string
	}{
		{"stops at first missing", "/a/b/c/d", 0, []string{"/", "/a", "/a/b"}},
		{"all present", "/a/b/f.txt", 0, []string{"/", "/a", "/a/b", "/a/b/f.txt"}},
		{"missing below root", "/x/a/b", 0, []string{"/"}},
		{"start inside", "/a/b/c", 2, []string{"/a/b"}},
		{"start past existing", "/a/b/c", 3, []string{}},
		{"gap does not resume", "/a/missing/b", 0, []string{"/", "/a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := NewPrefixes(posix(tt.path), PrefixOptions{Mode: ExistOnly, Start: tt.start, FS: fsys})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strs(ps.Collect()))
		})
	}
}

func TestPrefixesExistOnlyIsComputedOnce(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/a/b", 0755))

	ps, err := NewPrefixes(posix("/a/b"), PrefixOptions{Mode: ExistOnly, FS: filesystem.NewAferoFS(mem)})
	require.NoError(t, err)

	require.NoError(t, mem.RemoveAll("/a"))
	assert.Equal(t, []string{"/", "/a", "/a/b"}, strs(ps.Collect()))
}

type deniedFS struct{ afero.Fs }

func (deniedFS) Stat(string) (os.FileInfo, error) { return nil, fs.ErrPermission }

func TestPrefixesExistOnlyError(t *testing.T) {
	fsys := filesystem.NewAferoFS(deniedFS{afero.NewMemMapFs()})
	_, err := NewPrefixes(posix("/a"), PrefixOptions{Mode: ExistOnly, FS: fsys})
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestIterateAndForEach(t *testing.T) {
	ps, err := Iterate(posix("a/b"), NameOnly)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, strs(ps.Collect()))

	var seen []string
	err = ForEach(posix("/a/b"), 1, FullPath, func(p types.Path) {
		seen = append(seen, p.String())
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/a/b"}, seen)

	assert.NoError(t, ForEach(nil, 0, FullPath, func(types.Path) { t.Fatal("called") }))
	assert.NoError(t, ForEach(posix("a"), 0, FullPath, nil))

	err = ForEach(posix("a"), -2, FullPath, func(types.Path) {})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseIterMode(t *testing.T) {
	for _, mode := range []IterMode{FullPath, NameOnly, ExistOnly} {
		parsed, err := ParseIterMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	parsed, err := ParseIterMode("Name-Only")
	require.NoError(t, err)
	assert.Equal(t, NameOnly, parsed)

	_, err = ParseIterMode("bogus")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "IterMode(9)", IterMode(9).String())
}

func TestPrefixesExistOnlyLogsNothingWithoutSetup(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	defer func() { log.Logger = saved }()
	savedLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(savedLevel)

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = log.Logger.Output(&buf)

	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/a", 0755))
	ps, err := NewPrefixes(posix("/a/b/c"), PrefixOptions{Mode: ExistOnly, FS: filesystem.NewAferoFS(mem)})
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/a"}, strs(ps.Collect()))
	assert.Empty(t, buf.String())
}
