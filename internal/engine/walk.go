package engine

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/seekr/seekr/internal/ignore"
	"github.com/seekr/seekr/internal/types"
)

// target is one traversal candidate. rel is slash-separated and relative to
// the search root; abs is used for content reads.
type target struct {
	rel string
	abs string
}

// collectTargets enumerates the full candidate set for cfg.Mode before any
// matching happens, so the total is known up front for percentage progress.
// Unreadable entries are skipped and the walk continues.
func collectTargets(cfg Config) ([]target, error) {
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".seekrignore"))
	exts := normalizeExtensions(cfg.Extensions)
	wantDirs := cfg.Mode == types.ModeDirName

	var out []target
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p == cfg.Root {
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			if ign.Match(rel) {
				return filepath.SkipDir
			}
			if wantDirs && allowedByGlobs(rel, cfg) {
				out = append(out, target{rel: rel, abs: p})
			}
			return nil
		}
		if wantDirs {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		// Extension filter applies to file-producing modes only, exact match.
		if len(exts) > 0 && !exts[filepath.Ext(rel)] {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		out = append(out, target{rel: rel, abs: p})
		return nil
	})
	return out, err
}

// CountTargets returns the number of candidates a search with cfg would
// visit, without reading any file bodies. A missing root counts zero.
func CountTargets(cfg Config) (int, error) {
	mode, err := types.ParseMode(string(cfg.Mode))
	if err != nil {
		return 0, err
	}
	cfg.Mode = mode
	targets, err := collectTargets(cfg)
	if err != nil {
		return 0, err
	}
	return len(targets), nil
}
