package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, ".seekrignore")
	content := "node_modules/\n*.bak\n# comment\n\nscratch.txt\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"node_modules/pkg/index.js": true,
		"notes/old.bak":             true,
		"scratch.txt":               true,
		"src/app.go":                false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestIgnoreLoad_Missing(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), ".seekrignore"))
	if err == nil {
		t.Fatal("expected error for missing ignore file")
	}
	if !m.Empty() {
		t.Fatal("missing file should produce an empty matcher")
	}
	if m.Match("anything.txt") {
		t.Fatal("empty matcher must match nothing")
	}
}
