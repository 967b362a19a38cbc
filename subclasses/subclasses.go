// Package subclasses implements the subclass hierarchy of the
// [Shared MIME-info specification].
// Every line of a subclasses file declares that one MIME type is a
// subclass of another, for example that text/x-python is a subclass of
// application/x-executable. The hierarchy is used to fall back to a
// broader type when no application handles the specific one.
//
// [Shared MIME-info specification]: https://specifications.freedesktop.org/shared-mime-info-spec/0.22/
package subclasses

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xdgkit/sharedmime/basedir"
)

const (
	mimeTextPlain = "text/plain"
	mimeOctet     = "application/octet-stream"
)

// MalformedLineError reports a subclasses line that does not consist of
// two space-separated MIME types.
type MalformedLineError struct {
	FileIndex int
	LineIndex int
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("malformed subclass line at %d", e.LineIndex)
}

// Tree holds the subclass hierarchy. The zero value is not usable; use
// [Load] or [LoadFromOs].
type Tree struct {
	parents map[string][]string
}

// Load builds the hierarchy from the given readers.
// Order is important as earlier readers have higher precedence.
func Load(readers []io.Reader) (*Tree, error) {
	tree := &Tree{
		parents: make(map[string][]string),
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

			sub, parent, found := strings.Cut(line, " ")
			if !found || sub == "" || parent == "" {
				return nil, MalformedLineError{
					FileIndex: fileIndex,
					LineIndex: lineIndex,
				}
			}

			if !slices.Contains(tree.parents[sub], parent) {
				tree.parents[sub] = append(tree.parents[sub], parent)
			}
		}

		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// LoadFromOs loads the subclasses files according to both the
// shared-mime-info spec and the basedir spec.
// XDG_DATA_HOME and XDG_DATA_DIRS are retrieved from the environment.
func LoadFromOs() (*Tree, error) {
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
		fPath := filepath.Join(dir, "mime", "subclasses")
		f, err := os.Open(fPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			continue
		case err != nil:
			return nil, fmt.Errorf("failed to open subclasses file at %s: %w", fPath, err)
		}

		files = append(files, f)
		readers = append(readers, f)
	}

	tree, err := Load(readers)
	if err == nil {
		return tree, nil
	}

	var malformed MalformedLineError
	if errors.As(err, &malformed) && malformed.FileIndex < len(files) {
		return nil, fmt.Errorf(
			"failed to load subclasses file %s: %w",
			files[malformed.FileIndex].Name(),
			err,
		)
	}

	return nil, err
}

// Parents returns the MIME types the given type is directly a subclass
// of. Types without registered parents fall back to the implicit
// hierarchy: text types are subclasses of text/plain and everything but
// inode types is a subclass of application/octet-stream.
func (t *Tree) Parents(mime string) []string {
	if parents := t.parents[mime]; len(parents) > 0 {
		return parents
	}

	switch {
	case mime == mimeOctet:
		return nil
	case mime == mimeTextPlain:
		return []string{mimeOctet}
	case strings.HasPrefix(mime, "text/"):
		return []string{mimeTextPlain}
	case !strings.HasPrefix(mime, "inode/"):
		return []string{mimeOctet}
	default:
		return nil
	}
}

// Ancestors returns every MIME type the given type is a subclass of,
// directly or transitively, without duplicates. The order is priority
// first, determined by a depth first, pre-order traversal of the
// registered hierarchy. The implicit fallbacks of [Tree.Parents] are
// appended at the end when applicable.
func (t *Tree) Ancestors(mime string) []string {
	visited := make(map[string]struct{})
	work := slices.Clone(t.parents[mime])
	result := make([]string, 0, len(work))

	for len(work) > 0 {
		current := work[0]
		work = work[1:]

		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}
		result = append(result, current)

		if parents := t.parents[current]; len(parents) > 0 {
			work = append(slices.Clone(parents), work...)
		}
	}

	// The implicit parents apply to the queried type as well as to
	// anything found in the registered hierarchy.
	if _, ok := visited[mimeTextPlain]; !ok && mime != mimeTextPlain {
		if anyHasPrefix(mime, result, "text/") {
			result = append(result, mimeTextPlain)
		}
	}
	if _, ok := visited[mimeOctet]; !ok && mime != mimeOctet {
		if !allHavePrefix(mime, result, "inode/") {
			result = append(result, mimeOctet)
		}
	}

	return result
}

func anyHasPrefix(mime string, others []string, prefix string) bool {
	if strings.HasPrefix(mime, prefix) {
		return true
	}

	for _, item := range others {
		if strings.HasPrefix(item, prefix) {
			return true
		}
	}

	return false
}

func allHavePrefix(mime string, others []string, prefix string) bool {
	if !strings.HasPrefix(mime, prefix) {
		return false
	}

	for _, item := range others {
		if !strings.HasPrefix(item, prefix) {
			return false
		}
	}

	return true
}
