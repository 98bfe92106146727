package core_test

import (
	"fmt"
	"os"

	"github.com/seekr/seekr/pkg/core"
)

// ExampleSearch demonstrates a simple filename search of a directory.
func ExampleSearch() {
	cfg := core.Config{
		Root:     ".",
		Mode:     core.ModeFileName,
		Keywords: []string{"report"},
	}

	matches, err := core.Search(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		return
	}

	if len(matches) == 0 {
		fmt.Println("No matches found.")
	} else {
		fmt.Printf("Found %d matches.\n", len(matches))
		_ = core.MarshalMatches(os.Stdout, matches)
	}
}

// ExampleSearchWithStats shows how to retrieve execution statistics and the
// tagged invalid-root outcome.
func ExampleSearchWithStats() {
	cfg := core.Config{
		Root:     "testdata/tree",
		Mode:     core.ModeContent,
		Keywords: []string{"Error", "Warn"},
		Threads:  4,
	}

	result, err := core.SearchWithStats(cfg)
	if err != nil {
		panic(err)
	}
	if result.RootMissing {
		fmt.Println("search root does not exist")
		return
	}

	fmt.Printf("Scanned %d candidates in %s\n", result.Scanned, result.Duration)
	fmt.Printf("Found %d matches\n", len(result.Matches))
}
