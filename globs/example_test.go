package globs_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/xdgkit/sharedmime/globs"
)

func ExampleLoadFromOs() {
	m, err := globs.LoadFromOs()
	if err != nil {
		log.Fatalf("Failed to load glob files: %v\n", err)
	}

	if types, ok := m.Lookup("report.pdf"); ok {
		fmt.Println(strings.Join(types, ", "))
	}
}

func ExampleMap_Lookup() {
	m := globs.NewMap()
	err := m.LoadV2(strings.NewReader(`50:text/x-csrc:*.c
80:text/x-mycsrc:*.c
50:text/x-chdr:*.h`))
	if err != nil {
		log.Fatalf("Failed to load globs: %v\n", err)
	}

	types, ok := m.Lookup("main.c")
	if !ok {
		fmt.Println("no match")
		return
	}

	fmt.Println(strings.Join(types, ", "))
	// Output: text/x-mycsrc, text/x-csrc
}
