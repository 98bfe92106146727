package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		path string
		want bool
	}{
		{"dotted", []string{".log"}, ".log", true},
		{"dotless input normalized", []string{"log"}, ".log", true},
		{"exact not prefix", []string{".log"}, ".log2", false},
		{"case sensitive", []string{".LOG"}, ".log", false},
		{"blank entries dropped", []string{" ", ""}, ".log", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exts := normalizeExtensions(tt.in)
			assert.Equal(t, tt.want, exts[tt.path])
		})
	}
}

func TestNormalizeExtensions_EmptyMeansNoFilter(t *testing.T) {
	assert.Nil(t, normalizeExtensions(nil))
	assert.Nil(t, normalizeExtensions([]string{"", " "}))
}

func TestAllowedByGlobs(t *testing.T) {
	tests := []struct {
		name    string
		include string
		exclude string
		path    string
		want    bool
	}{
		{"no globs allows all", "", "", "a/b.txt", true},
		{"include matches", "**/*.go", "", "src/main.go", true},
		{"include rejects", "**/*.go", "", "src/main.py", false},
		{"exclude wins", "", "**/*.tmp", "cache/x.tmp", false},
		{"base name match", "*.md", "", "docs/guide.md", true},
		{"exclude after include", "**/*.go", "vendor/**", "vendor/lib.go", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{IncludeGlobs: tt.include, ExcludeGlobs: tt.exclude}
			assert.Equal(t, tt.want, allowedByGlobs(tt.path, cfg))
		})
	}
}

func TestDefaultExcludes(t *testing.T) {
	assert.True(t, isDefaultDirExcluded(".git"))
	assert.True(t, isDefaultDirExcluded("node_modules"))
	assert.False(t, isDefaultDirExcluded("src"))
	assert.True(t, isDefaultFileExcluded("assets/logo.png"))
	assert.True(t, isDefaultFileExcluded("yarn.lock"))
	assert.False(t, isDefaultFileExcluded("main.go"))
}
