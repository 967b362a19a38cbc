package globs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xdgkit/sharedmime/basedir"
)

// LoadFromOs loads the glob files according to both the shared-mime-info
// spec and the basedir spec.
// XDG_DATA_HOME and XDG_DATA_DIRS are retrieved from the environment.
// For every data directory, mime/globs2 is loaded when it exists;
// otherwise mime/globs is loaded. Directories with neither file are
// skipped.
func LoadFromOs() (*Map, error) {
	var dirs []string
	dirs = append(dirs, basedir.DataHome)
	dirs = append(dirs, basedir.DataDirs...)

	m := NewMap()
	for _, dir := range dirs {
		loaded, err := loadOsFile(m, filepath.Join(dir, "mime", "globs2"), (*Map).LoadV2)
		if err != nil {
			return nil, err
		}
		if loaded {
			continue
		}

		if _, err := loadOsFile(m, filepath.Join(dir, "mime", "globs"), (*Map).LoadV1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func loadOsFile(m *Map, path string, load func(*Map, io.Reader) error) (bool, error) {
	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to open glob file at %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := load(m, f); err != nil {
		return false, fmt.Errorf("failed to load glob file at %s: %w", path, err)
	}

	return true, nil
}
