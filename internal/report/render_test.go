package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/seekr/seekr/internal/types"
)

func TestPrintText_NoMatches_ShowsFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, nil, PrintOptions{Duration: 1200 * time.Millisecond, Scanned: 10})
	out := buf.String()
	if !strings.Contains(out, "No matches found") {
		t.Fatalf("expected friendly no-matches message; got: %q", out)
	}
	if !strings.Contains(out, "Candidates scanned: 10") {
		t.Fatalf("expected footer with candidate count; got: %q", out)
	}
}

func TestPrintText_WithMatches(t *testing.T) {
	var buf bytes.Buffer
	ms := []types.Match{{Path: "logs/app.log", Keyword: "Error"}}
	PrintText(&buf, ms, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "Matches: 1") {
		t.Fatalf("expected matches header; got: %q", out)
	}
	if !strings.Contains(out, "logs/app.log") {
		t.Fatalf("expected path column; got: %q", out)
	}
}

func TestPrintText_PreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	ms := []types.Match{
		{Path: "z.txt", Keyword: "b"},
		{Path: "a.txt", Keyword: "a"},
	}
	PrintText(&buf, ms, PrintOptions{NoColor: true})
	out := buf.String()
	if strings.Index(out, "z.txt") > strings.Index(out, "a.txt") {
		t.Fatalf("renderer must not reorder matches; got: %q", out)
	}
}

func TestPrintTable_WithMatches(t *testing.T) {
	var buf bytes.Buffer
	ms := []types.Match{{Path: "logs/app.log", Keyword: "Error"}}
	PrintTable(&buf, ms, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "KEYWORD") {
		t.Fatalf("expected table header with KEYWORD; got: %q", out)
	}
	if !strings.Contains(out, "logs/app.log") {
		t.Fatalf("expected path in table; got: %q", out)
	}
}

func TestPrintTable_NoMatches_ShowsFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, PrintOptions{Duration: 1200 * time.Millisecond, Scanned: 10})
	out := buf.String()
	if !strings.Contains(out, "No matches found") {
		t.Fatalf("expected friendly no-matches message; got: %q", out)
	}
	if !strings.Contains(out, "Candidates scanned: 10") {
		t.Fatalf("expected footer; got: %q", out)
	}
}
