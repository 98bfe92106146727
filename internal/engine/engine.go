package engine

import (
	"errors"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seekr/seekr/internal/types"
)

// Config controls a single search invocation: scope, mode, and filters.
type Config struct {
	Root       string
	Mode       types.Mode
	Keywords   []string
	Extensions []string

	// Optional comma-separated doublestar globs, applied to the
	// slash-relative path of every candidate.
	IncludeGlobs string
	ExcludeGlobs string

	MaxBytes        int64 // skip files larger than this in content mode (0 = unlimited)
	Threads         int   // content-mode worker count (0 = GOMAXPROCS)
	DefaultExcludes bool  // apply the built-in exclude list (.git, node_modules, media blobs)

	// Progress is invoked exactly once per candidate processed. It is
	// advisory: a nil or no-op callback yields identical matches.
	Progress func()
}

// Result contains matches and basic search statistics.
type Result struct {
	Matches  []types.Match
	Scanned  int
	Duration time.Duration

	// RootMissing is set when the search root does not exist or is not a
	// directory. Matches is empty and no traversal was attempted.
	RootMissing bool
}

// Search runs a search and returns only the matches (without stats).
func Search(cfg Config) ([]types.Match, error) {
	res, err := SearchWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Matches, nil
}

// SearchWithStats runs a search and returns matches along with timing and
// counts. An invalid root is not an error: it yields an empty result with
// RootMissing set, so callers can distinguish it from "no matches".
func SearchWithStats(cfg Config) (Result, error) {
	var result Result

	if len(cfg.Keywords) == 0 {
		return result, errors.New("at least one keyword is required")
	}
	mode, err := types.ParseMode(string(cfg.Mode))
	if err != nil {
		return result, err
	}
	cfg.Mode = mode

	st, err := os.Stat(cfg.Root)
	if err != nil || !st.IsDir() {
		result.RootMissing = true
		return result, nil
	}

	started := time.Now()
	targets, err := collectTargets(cfg)
	if err != nil {
		return result, err
	}
	// Nothing to search is a valid terminal state, not a failure.
	if len(targets) == 0 {
		result.Duration = time.Since(started)
		return result, nil
	}

	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}
	if cfg.Mode == types.ModeContent && cfg.Threads > 1 {
		result.Matches = matchParallel(cfg, targets)
	} else {
		result.Matches = matchSequential(cfg, targets)
	}
	result.Scanned = len(targets)
	result.Duration = time.Since(started)
	return result, nil
}

func matchSequential(cfg Config, targets []target) []types.Match {
	var out []types.Match
	for _, tgt := range targets {
		out = append(out, matchTarget(cfg, tgt)...)
		if cfg.Progress != nil {
			cfg.Progress()
		}
	}
	return out
}

// matchParallel fans content matching out across workers. Per-index slots
// reassemble the exact sequential order; progress calls are serialized.
func matchParallel(cfg Config, targets []target) []types.Match {
	slots := make([][]types.Match, len(targets))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(cfg.Threads)
	for i := range targets {
		i := i
		g.Go(func() error {
			slots[i] = matchTarget(cfg, targets[i])
			if cfg.Progress != nil {
				mu.Lock()
				cfg.Progress()
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	var out []types.Match
	for _, ms := range slots {
		out = append(out, ms...)
	}
	return out
}
