package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSearch_Smoke(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Report.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	matches, err := Search(Config{Root: dir, Mode: ModeFileName, Keywords: []string{"report"}})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(matches) != 1 || matches[0].Path != "Report.txt" {
		t.Fatalf("unexpected matches: %v", matches)
	}
}

func TestCountTargets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	n, err := CountTargets(Config{Root: dir, Mode: ModeContent})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 target, got %d", n)
	}
}

func TestMarshalUnmarshalMatches(t *testing.T) {
	in := []Match{{Path: "a.txt", Keyword: "x"}}
	var buf bytes.Buffer
	if err := MarshalMatches(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := UnmarshalMatches(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %v", out)
	}
}
