// Package aliases implements the MIME type aliases of the
// [Shared MIME-info specification].
// Every line of an aliases file maps an alternative name to the canonical
// MIME type, for example application/x-pdf to application/pdf. Resolving
// aliases before any further lookup keeps the rest of the database keyed
// by canonical types only.
//
// [Shared MIME-info specification]: https://specifications.freedesktop.org/shared-mime-info-spec/0.22/
package aliases

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xdgkit/sharedmime/basedir"
)

// MalformedLineError reports an aliases line that does not consist of two
// space-separated MIME types.
type MalformedLineError struct {
	FileIndex int
	LineIndex int
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("malformed alias line at %d", e.LineIndex)
}

// Aliases maps alternative MIME type names to their canonical form. The
// zero value is not usable; use [Load] or [LoadFromOs].
type Aliases struct {
	canonical map[string]string
}

// Load builds the alias table from the given readers.
// Order is important as earlier readers have higher precedence: the first
// canonical type registered for an alias wins.
func Load(readers []io.Reader) (*Aliases, error) {
	aliases := &Aliases{
		canonical: make(map[string]string),
	}

	for fileIndex, reader := range readers {
		sc := bufio.NewScanner(reader)
		lineIndex := 0
		for sc.Scan() {
			line := sc.Text()
			lineIndex++

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			alias, canonical, found := strings.Cut(line, " ")
			if !found || alias == "" || canonical == "" {
				return nil, MalformedLineError{
					FileIndex: fileIndex,
					LineIndex: lineIndex,
				}
			}

			if _, ok := aliases.canonical[alias]; !ok {
				aliases.canonical[alias] = canonical
			}
		}

		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	return aliases, nil
}

// LoadFromOs loads the aliases files according to both the
// shared-mime-info spec and the basedir spec.
// XDG_DATA_HOME and XDG_DATA_DIRS are retrieved from the environment.
func LoadFromOs() (*Aliases, error) {
	var dirs []string
	dirs = append(dirs, basedir.DataHome)
	dirs = append(dirs, basedir.DataDirs...)

	var files []*os.File
	var readers []io.Reader
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	for _, dir := range dirs {
		fPath := filepath.Join(dir, "mime", "aliases")
		f, err := os.Open(fPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			continue
		case err != nil:
			return nil, fmt.Errorf("failed to open aliases file at %s: %w", fPath, err)
		}

		files = append(files, f)
		readers = append(readers, f)
	}

	aliases, err := Load(readers)
	if err == nil {
		return aliases, nil
	}

	var malformed MalformedLineError
	if errors.As(err, &malformed) && malformed.FileIndex < len(files) {
		return nil, fmt.Errorf(
			"failed to load aliases file %s: %w",
			files[malformed.FileIndex].Name(),
			err,
		)
	}

	return nil, err
}

// Unalias returns the canonical form of the given MIME type. Types
// without a registered alias are returned unchanged.
func (a *Aliases) Unalias(mime string) string {
	if canonical, ok := a.canonical[mime]; ok {
		return canonical
	}

	return mime
}
