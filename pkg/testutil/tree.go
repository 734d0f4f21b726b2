package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/npaths/pkg/filesystem"
	"github.com/arthur-debert/npaths/pkg/types"
)

// Tree maps slash-separated paths to file contents. A key ending in "/"
// is an (empty) directory.
type Tree map[string]string

// MemoryTree writes tree into a new in-memory filesystem rooted at "/"
func MemoryTree(t *testing.T, tree Tree) (types.FS, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	writeTree(t, mem, "/", tree)
	return filesystem.NewAferoFS(mem), mem
}

// WriteTree writes tree below dir on the OS filesystem
func WriteTree(t *testing.T, dir string, tree Tree) {
	t.Helper()
	writeTree(t, afero.NewOsFs(), dir, tree)
}

func writeTree(t *testing.T, fsys afero.Fs, root string, tree Tree) {
	t.Helper()
	for name, content := range tree {
		full := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fsys.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, afero.WriteFile(fsys, full, []byte(content), os.FileMode(0644)))
	}
}
