// Package search maintains the live match list for a literal substring
// query over an editor buffer, with cyclic forward/backward navigation
// and a status readout.
package search

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Span is one match as a half-open [Start, End) range of offsets into
// the buffer text.
type Span struct {
	Start int
	End   int
}

// DebounceDelay is the quiet period after the last query change before
// a debounced rebuild fires.
const DebounceDelay = 300 * time.Millisecond

// Index holds the ordered matches for the current query and a cursor
// for cyclic navigation. Matches are found by a single left-to-right
// scan, so overlapping occurrences inside a found match are skipped
// past the match end. The query is always treated as a literal;
// pattern metacharacters are escaped before compilation.
type Index struct {
	mu      sync.Mutex
	text    string
	query   string
	matches []Span
	cursor  int

	delay      time.Duration
	pending    *time.Timer
	gen        uint64
	onNavigate func(Span)
	onUpdate   func()
}

// NewIndex creates an empty index with no matches and no cursor.
func NewIndex() *Index {
	return &Index{
		cursor: -1,
		delay:  DebounceDelay,
	}
}

// SetNavigateFunc registers the scroll-into-view hook fired on every
// successful Next and Previous call.
func (x *Index) SetNavigateFunc(fn func(Span)) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.onNavigate = fn
}

// SetUpdateFunc registers a hook fired after every rebuild, including
// the reset caused by a wholesale text replacement. Consumers use it
// to refresh highlights and status displays.
func (x *Index) SetUpdateFunc(fn func()) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.onUpdate = fn
}

// SetDebounce overrides the debounce delay for QueryChanged.
func (x *Index) SetDebounce(d time.Duration) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.delay = d
}

// SetText replaces the buffer text wholesale. A new body invalidates
// the prior search context, so the query, matches and cursor all
// reset.
func (x *Index) SetText(text string) {
	x.mu.Lock()
	x.stopPendingLocked()
	x.gen++
	x.text = text
	x.query = ""
	x.matches = nil
	x.cursor = -1
	fn := x.onUpdate
	x.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// SetQuery rebuilds the match list for query immediately. A blank
// query clears all matches.
func (x *Index) SetQuery(query string) {
	x.mu.Lock()
	x.stopPendingLocked()
	x.gen++
	x.query = query
	x.rebuildLocked()
	fn := x.onUpdate
	x.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// QueryChanged schedules a rebuild for query after the debounce delay.
// Rapid-fire changes coalesce into a single rebuild of the final
// query. The rebuild carries the generation it was scheduled under:
// stopping the timer is not enough when it has already fired and its
// goroutine is waiting on the lock, so the callback re-checks that
// nothing superseded it before applying.
func (x *Index) QueryChanged(query string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.stopPendingLocked()
	x.gen++
	gen := x.gen
	x.pending = time.AfterFunc(x.delay, func() {
		x.setQueryIfCurrent(query, gen)
	})
}

// setQueryIfCurrent applies a debounced rebuild unless the index moved
// on (new text, a direct SetQuery, or a later QueryChanged) after the
// timer was armed.
func (x *Index) setQueryIfCurrent(query string, gen uint64) {
	x.mu.Lock()
	if gen != x.gen {
		x.mu.Unlock()
		return
	}
	x.stopPendingLocked()
	x.gen++
	x.query = query
	x.rebuildLocked()
	fn := x.onUpdate
	x.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Next advances the cursor to the next match, wrapping from the last
// match to the first. With no active match it lands on the first one.
// A no-op when there are no matches.
func (x *Index) Next() {
	x.mu.Lock()
	if len(x.matches) == 0 {
		x.mu.Unlock()
		return
	}
	if x.cursor < 0 {
		x.cursor = 0
	} else {
		x.cursor = (x.cursor + 1) % len(x.matches)
	}
	span := x.matches[x.cursor]
	fn := x.onNavigate
	x.mu.Unlock()

	if fn != nil {
		fn(span)
	}
}

// Previous is the mirror of Next, wrapping from the first match to the
// last.
func (x *Index) Previous() {
	x.mu.Lock()
	if len(x.matches) == 0 {
		x.mu.Unlock()
		return
	}
	if x.cursor < 0 {
		x.cursor = len(x.matches) - 1
	} else {
		x.cursor--
		if x.cursor < 0 {
			x.cursor = len(x.matches) - 1
		}
	}
	span := x.matches[x.cursor]
	fn := x.onNavigate
	x.mu.Unlock()

	if fn != nil {
		fn(span)
	}
}

// Status reports the match count, or the cursor position as "i/N" once
// navigation has selected a match.
func (x *Index) Status() string {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.cursor >= 0 {
		return fmt.Sprintf("%d/%d", x.cursor+1, len(x.matches))
	}
	return fmt.Sprintf("%d matches", len(x.matches))
}

// Matches returns a copy of the current match list in ascending start
// order.
func (x *Index) Matches() []Span {
	x.mu.Lock()
	defer x.mu.Unlock()
	out := make([]Span, len(x.matches))
	copy(out, x.matches)
	return out
}

// Cursor returns the current match index, or -1 when no match is
// selected.
func (x *Index) Cursor() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.cursor
}

// Current returns the selected match, if any.
func (x *Index) Current() (Span, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.cursor < 0 || x.cursor >= len(x.matches) {
		return Span{}, false
	}
	return x.matches[x.cursor], true
}

// Query returns the active query text.
func (x *Index) Query() string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.query
}

// Stop cancels any pending debounced rebuild.
func (x *Index) Stop() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.stopPendingLocked()
}

func (x *Index) stopPendingLocked() {
	if x.pending != nil {
		x.pending.Stop()
		x.pending = nil
	}
}

func (x *Index) rebuildLocked() {
	x.matches = nil
	x.cursor = -1
	if strings.TrimSpace(x.query) == "" {
		return
	}

	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(x.query))
	if err != nil {
		// QuoteMeta guarantees a valid pattern; kept as a guard.
		return
	}
	for _, loc := range re.FindAllStringIndex(x.text, -1) {
		x.matches = append(x.matches, Span{Start: loc[0], End: loc[1]})
	}
}
