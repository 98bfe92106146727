package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/seekr/seekr/internal/types"
)

// matchTarget evaluates every keyword against one candidate and returns the
// hits in keyword order. It never fails: an unreadable file in content mode
// simply contributes no matches.
func matchTarget(cfg Config, tgt target) []types.Match {
	var out []types.Match
	switch cfg.Mode {
	case types.ModeContent:
		data, err := os.ReadFile(tgt.abs)
		if err != nil {
			return nil
		}
		for _, kw := range cfg.Keywords {
			if keywordInContent(data, kw) {
				out = append(out, types.Match{Path: tgt.rel, Keyword: kw})
			}
		}
	default:
		base := filepath.Base(tgt.rel)
		for _, kw := range cfg.Keywords {
			if keywordInName(base, kw) {
				out = append(out, types.Match{Path: tgt.rel, Keyword: kw})
			}
		}
	}
	return out
}

// keywordInContent reports a case-sensitive substring hit anywhere in the
// file body. Binary files are scanned like any other bytes.
func keywordInContent(data []byte, keyword string) bool {
	return bytes.Contains(data, []byte(keyword))
}

// keywordInName reports a case-insensitive, unanchored substring hit against
// a file or directory base name.
func keywordInName(base, keyword string) bool {
	return strings.Contains(strings.ToLower(base), strings.ToLower(keyword))
}
