// Package core provides a small, stable facade over Seekr's internal search
// engine for external integrations. It deliberately re-exports a narrow API
// surface so third-party tools can depend on a stable import path without
// reaching into internal packages.
//
// Example:
//
//	cfg := core.Config{Root: ".", Mode: core.ModeFileName, Keywords: []string{"report"}}
//	matches, err := core.Search(cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalMatches(os.Stdout, matches)
package core
