// Package progress implements the advisory search progress display: a fixed
// total, a monotonic processed counter, and a rotating spinner glyph. It only
// observes the search; dropping it entirely leaves results unchanged.
package progress

import (
	"fmt"
	"io"
)

// glyphStep is how many processed items advance the spinner one position.
// Rotating per item churns the terminal for no benefit.
const glyphStep = 10

var glyphs = [...]byte{'|', '/', '-', '\\'}

// Tracker accumulates progress for one search invocation. The total is fixed
// at construction; Advance never exceeds it.
type Tracker struct {
	total     int
	processed int
	done      bool
}

// NewTracker returns a tracker for the given candidate total.
func NewTracker(total int) *Tracker {
	if total < 0 {
		total = 0
	}
	return &Tracker{total: total}
}

// Advance records one processed candidate.
func (t *Tracker) Advance() {
	if t.processed < t.total {
		t.processed++
	}
	if t.processed == t.total {
		t.done = true
	}
}

// Finish marks the tracker complete. Needed for the zero-candidate case,
// where Advance is never called.
func (t *Tracker) Finish() {
	t.processed = t.total
	t.done = true
}

// Processed returns the number of candidates seen so far.
func (t *Tracker) Processed() int { return t.processed }

// Total returns the fixed candidate total.
func (t *Tracker) Total() int { return t.total }

// Done reports whether every candidate has been processed.
func (t *Tracker) Done() bool { return t.done }

// Percent returns completion in [0,100]. A zero total reads as 100.
func (t *Tracker) Percent() float64 {
	if t.total == 0 {
		return 100
	}
	return float64(t.processed) / float64(t.total) * 100
}

// Glyph returns the current spinner character.
func (t *Tracker) Glyph() byte {
	return glyphs[(t.processed/glyphStep)%len(glyphs)]
}

// Render rewrites a single-line progress bar on w. Callers typically point
// it at stderr and finish with a trailing newline once the search is done.
func (t *Tracker) Render(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\r%c [%d/%d] %3.0f%%", t.Glyph(), t.processed, t.total, t.Percent())
}
