// Package report renders search results for the console. It never reorders
// matches: the engine's traversal order is part of the contract.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/seekr/seekr/internal/types"
)

// PrintOptions carries rendering knobs and the footer statistics.
type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
	Scanned  int
}

// PrintText writes matches in a plain columnar format.
func PrintText(w io.Writer, matches []types.Match, opts PrintOptions) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found")
	} else {
		maxKw := 7
		for _, m := range matches {
			if l := len(m.Keyword); l > maxKw {
				maxKw = l
			}
		}
		fmt.Fprintf(w, "Matches: %d\n", len(matches))
		for _, m := range matches {
			kw := m.Keyword
			pad := strings.Repeat(" ", maxKw-len(m.Keyword)+1)
			if !opts.NoColor {
				kw = "\x1b[36m" + kw + "\x1b[0m"
			}
			fmt.Fprintf(w, "%s%s%s\n", kw, pad, m.Path)
		}
	}
	printFooter(w, len(matches), opts)
}

// PrintTable writes matches as a bordered table.
func PrintTable(w io.Writer, matches []types.Match, opts PrintOptions) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found")
		printFooter(w, 0, opts)
		return
	}
	table := tablewriter.NewTable(w)
	table.Header([]string{"KEYWORD", "PATH"})
	for _, m := range matches {
		_ = table.Append([]string{m.Keyword, m.Path})
	}
	_ = table.Render()
	printFooter(w, len(matches), opts)
}

func printFooter(w io.Writer, n int, opts PrintOptions) {
	if opts.Duration <= 0 && opts.Scanned <= 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Matches: %d\n", n)
	if opts.Scanned > 0 {
		fmt.Fprintf(w, "Candidates scanned: %d\n", opts.Scanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Search duration: %.2fs\n", opts.Duration.Seconds())
	}
}
