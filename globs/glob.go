package globs

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultWeight is the weight of patterns from sources that carry no
// weight field, such as the v1 globs format.
const DefaultWeight = 50

type globKind int

const (
	// kindLiteral patterns contain no glob syntax and match by caseless
	// equality, e.g. "Makefile".
	kindLiteral globKind = iota

	// kindSuffix patterns are a leading * followed by glob-free text and
	// match by suffix comparison, e.g. "*.gif".
	kindSuffix

	// kindFull patterns contain wildcards, character classes, or escapes
	// anywhere else and require full glob evaluation, e.g. "*.anim[1-9j]".
	kindFull
)

// classify determines how a pattern is matched. The decision is made once,
// here; Matches never re-inspects the pattern text.
func classify(pattern string) globKind {
	maybeSuffix := false

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case i == 0 && c == '*':
			maybeSuffix = true
		case c == '\\' || c == '[' || c == '*' || c == '?':
			return kindFull
		}
	}

	if maybeSuffix {
		return kindSuffix
	}

	return kindLiteral
}

// Glob associates a file name pattern with a MIME type.
// A Glob is immutable once constructed.
type Glob struct {
	kind          globKind
	pattern       string
	suffix        string
	mimeType      string
	weight        int
	caseSensitive bool
}

// New creates a Glob for the given pattern. Higher weights take precedence
// when multiple patterns match the same file name.
// An error is returned if the pattern contains glob syntax that does not
// compile, such as an unterminated character class.
func New(mimeType string, pattern string, weight int, caseSensitive bool) (Glob, error) {
	g := Glob{
		kind:          classify(pattern),
		pattern:       pattern,
		mimeType:      mimeType,
		weight:        weight,
		caseSensitive: caseSensitive,
	}

	switch g.kind {
	case kindSuffix:
		g.suffix = pattern[1:]
	case kindFull:
		if !doublestar.ValidatePattern(pattern) {
			return Glob{}, fmt.Errorf("glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	return g, nil
}

// Simple creates a Glob with [DefaultWeight] that is case-insensitive.
func Simple(mimeType string, pattern string) (Glob, error) {
	return New(mimeType, pattern, DefaultWeight, false)
}

// MimeType returns the MIME type this glob identifies.
func (g Glob) MimeType() string {
	return g.mimeType
}

// Pattern returns the pattern text the glob was constructed from.
func (g Glob) Pattern() string {
	return g.pattern
}

// Weight returns the glob's priority. Higher weights win ties.
func (g Glob) Weight() int {
	return g.weight
}

// CaseSensitive reports whether the glob was marked case-sensitive.
func (g Glob) CaseSensitive() bool {
	return g.caseSensitive
}

// Matches reports whether the glob matches the given file name.
//
// Literal patterns compare by Unicode caseless equality regardless of the
// case-sensitivity flag. Suffix patterns compare case-sensitively first
// and, unless marked cs, again against the lowercased file name. Full
// patterns are evaluated by the glob engine on the pattern text as is;
// the cs flag has no effect on them. This mirrors the established
// behavior of the glob database and is deliberately left untouched.
func (g Glob) Matches(fileName string) bool {
	switch g.kind {
	case kindLiteral:
		return strings.EqualFold(g.pattern, fileName)
	case kindSuffix:
		if strings.HasSuffix(fileName, g.suffix) {
			return true
		}

		if !g.caseSensitive {
			return strings.HasSuffix(strings.ToLower(fileName), g.suffix)
		}
	case kindFull:
		// The pattern was validated in New.
		matched, err := doublestar.Match(g.pattern, fileName)
		return err == nil && matched
	}

	return false
}

// Equal reports whether both globs have the same pattern, MIME type,
// weight, and case sensitivity.
func (g Glob) Equal(other Glob) bool {
	return g == other
}

// V1String returns the glob in the v1 globs format, type:pattern.
// Weight and case sensitivity are not representable in this format.
func (g Glob) V1String() string {
	return g.mimeType + ":" + g.pattern
}

// V2String returns the glob in the v2 globs2 format,
// weight:type:pattern with a trailing :cs for case-sensitive globs.
func (g Glob) V2String() string {
	s := fmt.Sprintf("%d:%s:%s", g.weight, g.mimeType, g.pattern)
	if g.caseSensitive {
		s += ":cs"
	}

	return s
}

func (g Glob) String() string {
	var kind string
	switch g.kind {
	case kindLiteral:
		kind = "literal"
	case kindSuffix:
		kind = "suffix"
	case kindFull:
		kind = "full"
	}

	return fmt.Sprintf(
		"%s glob %q: %s (weight: %d, cs: %t)",
		kind,
		g.pattern,
		g.mimeType,
		g.weight,
		g.caseSensitive,
	)
}
