// Package globs resolves MIME types from file names using the glob
// databases of the [Shared MIME-info specification].
// A file name is matched against every registered pattern; the MIME types
// of all matching patterns are returned, highest weight first.
//
// Patterns come in two textual formats. The globs format associates a
// MIME type with a pattern:
//
//	text/x-csrc:*.c
//
// The globs2 format adds a weight and an optional case-sensitivity flag:
//
//	50:text/x-csrc:*.c
//	50:text/x-c++src:*.C:cs
//
// [Shared MIME-info specification]: https://specifications.freedesktop.org/shared-mime-info-spec/0.22/
package globs
