package globs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned by [ParseV1] and [ParseV2] for lines that do
// not have the expected fields. Loaders skip such lines.
var ErrMalformedLine = errors.New("malformed glob line")

// ParseV1 parses a line in the v1 globs format:
//
//	type:pattern
//
// Exactly two colon-separated fields are required and both must be
// non-empty. The resulting glob has [DefaultWeight] and is
// case-insensitive.
func ParseV1(line string) (Glob, error) {
	fields := strings.Split(line, ":")
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return Glob{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return Simple(fields[0], fields[1])
}

// ParseV2 parses a line in the v2 globs2 format:
//
//	weight:type:pattern
//	weight:type:pattern:cs
//
// The weight must be a non-negative base-10 integer. The only accepted
// fourth field is the literal cs, which marks the glob case-sensitive.
func ParseV2(line string) (Glob, error) {
	fields := strings.Split(line, ":")
	if len(fields) < 3 || len(fields) > 4 {
		return Glob{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	weight, err := strconv.Atoi(fields[0])
	if err != nil || weight < 0 {
		return Glob{}, fmt.Errorf("%w: bad weight in %q", ErrMalformedLine, line)
	}

	mimeType := fields[1]
	pattern := fields[2]
	if mimeType == "" || pattern == "" {
		return Glob{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	caseSensitive := false
	if len(fields) == 4 {
		if fields[3] != "cs" {
			return Glob{}, fmt.Errorf("%w: unknown flag in %q", ErrMalformedLine, line)
		}

		caseSensitive = true
	}

	return New(mimeType, pattern, weight, caseSensitive)
}
