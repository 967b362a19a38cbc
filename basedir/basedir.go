// Package basedir resolves the data directories specified by the
// [XDG Base Directory Specification]. The shared MIME database lives in
// the mime subdirectory of these directories.
//
// [XDG Base Directory Specification]: https://specifications.freedesktop.org/basedir-spec/0.8/
package basedir

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	// DataHome is the single base directory relative to which user-specific
	// data files should be written. This directory is defined by the
	// environment variable $XDG_DATA_HOME.
	DataHome string

	// DataDirs is a set of preference ordered base directories relative to
	// which data files should be searched. This set of directories is
	// defined by the environment variable $XDG_DATA_DIRS.
	DataDirs []string

	// Home is the equivalent of $HOME. It will always be non-empty.
	Home string
)

func init() {
	Reinit()
}

// Reinit reinitializes the basedir values. Use this if you change XDG
// environment variables.
func Reinit() {
	home := os.Getenv("HOME")
	if home == "" {
		// $HOME must always be set in a POSIX environment.
		panic("$HOME environment variable not set")
	}

	Home = home
	DataHome = singleVar("XDG_DATA_HOME", filepath.Join(home, ".local/share"))
	DataDirs = listVar("XDG_DATA_DIRS", []string{"/usr/local/share/", "/usr/share/"})
}

func singleVar(envName string, defaultValue string) string {
	envValue := os.Getenv(envName)
	if envValue == "" || !filepath.IsAbs(envValue) {
		return defaultValue
	}

	return envValue
}

func listVar(envName string, defaultValue []string) []string {
	envValue := os.Getenv(envName)
	if envValue == "" {
		return defaultValue
	}

	result := make([]string, 0)
	for _, path := range strings.Split(envValue, ":") {
		if path == "" || !filepath.IsAbs(path) {
			continue
		}

		result = append(result, path)
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
