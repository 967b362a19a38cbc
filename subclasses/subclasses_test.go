package subclasses_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xdgkit/sharedmime/subclasses"
)

func ExampleLoad() {
	tree, err := subclasses.Load([]io.Reader{
		strings.NewReader(`image/svg+xml application/xml`),
		strings.NewReader("image/svg+xml text/plain"),
	})
	if err != nil {
		log.Fatalf("Failed to load subclasses: %v\n", err)
	}

	fmt.Println(strings.Join(tree.Ancestors("image/svg+xml"), ", "))
	// Output: application/xml, text/plain, application/octet-stream
}

func load(t *testing.T, sources ...string) *subclasses.Tree {
	t.Helper()

	readers := make([]io.Reader, len(sources))
	for i, source := range sources {
		readers[i] = strings.NewReader(source)
	}

	tree, err := subclasses.Load(readers)
	if err != nil {
		t.Fatal(err)
	}

	return tree
}

func TestParents(t *testing.T) {
	tree := load(t, `text/x-python application/x-executable
application/x-perl application/x-executable
application/x-perl text/plain`)

	want := []string{"application/x-executable", "text/plain"}
	if diff := cmp.Diff(want, tree.Parents("application/x-perl")); diff != "" {
		t.Errorf("Parents() mismatch (-want +got):\n%s", diff)
	}
}

func TestParentsImplicit(t *testing.T) {
	tree := load(t, ``)

	cases := []struct {
		mime string
		want []string
	}{
		{"text/plain", []string{"application/octet-stream"}},
		{"text/x-python", []string{"text/plain"}},
		{"application/pdf", []string{"application/octet-stream"}},
		{"inode/directory", nil},
		{"application/octet-stream", nil},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, tree.Parents(c.mime)); diff != "" {
			t.Errorf("Parents(%q) mismatch (-want +got):\n%s", c.mime, diff)
		}
	}
}

func TestAncestors(t *testing.T) {
	tree := load(t,
		`image/svg+xml application/xml
application/xml application/xml2
application/xml2 text/xml`,
		"image/svg+xml application/svg",
	)

	want := []string{
		"application/xml",
		"application/xml2",
		"text/xml",
		"application/svg",
		"text/plain",
		"application/octet-stream",
	}
	if diff := cmp.Diff(want, tree.Ancestors("image/svg+xml")); diff != "" {
		t.Errorf("Ancestors() mismatch (-want +got):\n%s", diff)
	}
}

func TestAncestorsNested(t *testing.T) {
	tree := load(t,
		`image/svg+xml application/xml
application/xml application/xml2
application/xml2 text/plain`,
		"image/svg+xml application/svg",
	)

	want := []string{
		"application/xml",
		"application/xml2",
		"text/plain",
		"application/svg",
		"application/octet-stream",
	}
	if diff := cmp.Diff(want, tree.Ancestors("image/svg+xml")); diff != "" {
		t.Errorf("Ancestors() mismatch (-want +got):\n%s", diff)
	}
}

func TestAncestorsNoDuplicates(t *testing.T) {
	tree := load(t, `image/svg+xml application/xml
application/xml application/xml2
application/xml text/plain
application/xml2 text/plain`)

	want := []string{
		"application/xml",
		"application/xml2",
		"text/plain",
		"application/octet-stream",
	}
	if diff := cmp.Diff(want, tree.Ancestors("image/svg+xml")); diff != "" {
		t.Errorf("Ancestors() mismatch (-want +got):\n%s", diff)
	}
}

func TestAncestorsInode(t *testing.T) {
	tree := load(t, `inode/mount-point inode/directory
application/svg+xml application/xml`)

	want := []string{"inode/directory"}
	if diff := cmp.Diff(want, tree.Ancestors("inode/mount-point")); diff != "" {
		t.Errorf("Ancestors() mismatch (-want +got):\n%s", diff)
	}
}

func TestAncestorsImplicitOnly(t *testing.T) {
	tree := load(t, ``)

	cases := []struct {
		mime string
		want []string
	}{
		{"text/foo", []string{"text/plain", "application/octet-stream"}},
		{"text/plain", []string{"application/octet-stream"}},
		{"application/octet-stream", []string{}},
		{"inode/directory", []string{}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, tree.Ancestors(c.mime)); diff != "" {
			t.Errorf("Ancestors(%q) mismatch (-want +got):\n%s", c.mime, diff)
		}
	}
}

func TestAncestorsImplicitAfterRegistered(t *testing.T) {
	tree := load(t, `text/foo application/bar`)

	want := []string{
		"application/bar",
		"text/plain",
		"application/octet-stream",
	}
	if diff := cmp.Diff(want, tree.Ancestors("text/foo")); diff != "" {
		t.Errorf("Ancestors() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := subclasses.Load([]io.Reader{
		strings.NewReader("text/x-python application/x-executable"),
		strings.NewReader("not-two-fields"),
	})

	var malformed subclasses.MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, expected MalformedLineError", err)
	}
	if malformed.FileIndex != 1 || malformed.LineIndex != 1 {
		t.Errorf("error location = file %d line %d", malformed.FileIndex, malformed.LineIndex)
	}
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	tree := load(t, `# subclass registry

text/x-python application/x-executable`)

	want := []string{"application/x-executable"}
	if diff := cmp.Diff(want, tree.Parents("text/x-python")); diff != "" {
		t.Errorf("Parents() mismatch (-want +got):\n%s", diff)
	}
}
