package filesystem

import (
	"errors"
	"io/fs"

	"github.com/arthur-debert/npaths/pkg/types"
)

// Exists reports whether name exists on fsys. A missing file is
// (false, nil); any other Stat error is returned unchanged.
func Exists(fsys types.FS, name string) (bool, error) {
	_, err := fsys.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
