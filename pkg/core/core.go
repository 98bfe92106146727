package core

import (
	"github.com/seekr/seekr/internal/engine"
	"github.com/seekr/seekr/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type Match = types.Match
type Mode = types.Mode

const (
	ModeContent  = types.ModeContent
	ModeFileName = types.ModeFileName
	ModeDirName  = types.ModeDirName
)

// ParseMode converts a mode string into a Mode, accepting common aliases.
func ParseMode(s string) (Mode, error) { return types.ParseMode(s) }

// Search is the stable entrypoint for other programs.
func Search(cfg Config) ([]Match, error) {
	return engine.Search(cfg)
}

// SearchWithStats runs a search and also returns timing and counts.
func SearchWithStats(cfg Config) (Result, error) {
	return engine.SearchWithStats(cfg)
}

// CountTargets reports how many candidates a search with cfg would visit.
func CountTargets(cfg Config) (int, error) { return engine.CountTargets(cfg) }
