package globs

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Map is an append-only collection of globs with a weighted file name
// lookup. Identical or overlapping patterns may coexist; lookups return
// every match.
//
// The intended use is to build the map once and treat it as read-only
// afterwards. Concurrent lookups are safe on a map that is no longer
// modified; Add and the loaders require external synchronization if they
// race with lookups.
type Map struct {
	globs []Glob
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// Add appends a glob to the map.
func (m *Map) Add(g Glob) {
	m.globs = append(m.globs, g)
}

// AddAll appends all given globs to the map.
func (m *Map) AddAll(globs []Glob) {
	m.globs = append(m.globs, globs...)
}

// Len returns the number of globs in the map.
func (m *Map) Len() int {
	return len(m.globs)
}

// LoadV1 reads globs in the v1 format from the given reader and appends
// them to the map.
//
// Empty lines and lines starting with # are skipped, as are lines that do
// not have the expected fields. A pattern with invalid glob syntax aborts
// the load with an error.
func (m *Map) LoadV1(reader io.Reader) error {
	return m.load(reader, ParseV1)
}

// LoadV2 reads globs in the v2 format from the given reader and appends
// them to the map. Line handling is identical to [Map.LoadV1].
func (m *Map) LoadV2(reader io.Reader) error {
	return m.load(reader, ParseV2)
}

func (m *Map) load(reader io.Reader, parse func(string) (Glob, error)) error {
	sc := bufio.NewScanner(reader)
	lineIndex := 0
	for sc.Scan() {
		line := sc.Text()
		lineIndex++

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		g, err := parse(line)
		switch {
		case errors.Is(err, ErrMalformedLine):
			continue
		case err != nil:
			return fmt.Errorf("line %d: %w", lineIndex, err)
		}

		m.globs = append(m.globs, g)
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read glob lines: %w", err)
	}

	return nil
}

// LoadV1File loads the v1 glob file at the given path.
func (m *Map) LoadV1File(path string) error {
	return m.loadFile(path, (*Map).LoadV1)
}

// LoadV2File loads the v2 glob file at the given path.
func (m *Map) LoadV2File(path string) error {
	return m.loadFile(path, (*Map).LoadV2)
}

func (m *Map) loadFile(path string, load func(*Map, io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open glob file at %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := load(m, f); err != nil {
		return fmt.Errorf("failed to load glob file at %s: %w", path, err)
	}

	return nil
}

// Lookup returns the MIME types of all globs matching the given file
// name, ordered by descending weight. Globs of equal weight keep the
// order in which they were added. If multiple globs map to the same MIME
// type, it appears once per match.
//
// The second return value is false when no glob matches.
func (m *Map) Lookup(fileName string) ([]string, bool) {
	var matching []Glob
	for _, g := range m.globs {
		if g.Matches(fileName) {
			matching = append(matching, g)
		}
	}

	if len(matching) == 0 {
		return nil, false
	}

	slices.SortStableFunc(matching, func(a, b Glob) int {
		return cmp.Compare(b.weight, a.weight)
	})

	result := make([]string, len(matching))
	for i, g := range matching {
		result[i] = g.mimeType
	}

	return result, true
}
