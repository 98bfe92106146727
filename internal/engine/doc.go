// Package engine contains the core search logic for Seekr. It validates the
// search root, enumerates candidates for the selected mode, matches every
// keyword against each candidate, and returns matches in traversal order.
// This package is internal; external consumers should use the stable facade
// in pkg/core.
package engine
