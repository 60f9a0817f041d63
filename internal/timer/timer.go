// Package timer implements the stopwatch core: per-label timers with
// timestamp-interval accounting and a registry enforcing that at most one
// timer runs at any instant.
package timer

import "time"

// Timer tracks the running history of one label as an ordered sequence of
// timestamp marks. Marks strictly alternate start/end; an odd count means
// the timer is currently running. Elapsed time is derived from the marks
// rather than incremented by a ticking worker, so it cannot drift.
//
// Timer is not safe for concurrent use on its own; the Registry serializes
// access to every timer it owns.
type Timer struct {
	label rune
	marks []time.Time
	now   func() time.Time
}

// NewTimer returns a stopped timer for label. A nil clock defaults to
// time.Now.
func NewTimer(label rune, clock func() time.Time) *Timer {
	if clock == nil {
		clock = time.Now
	}
	return &Timer{label: label, now: clock}
}

// Label returns the key this timer is registered under.
func (t *Timer) Label() rune {
	return t.label
}

// Running reports whether the trailing interval is open.
func (t *Timer) Running() bool {
	return len(t.marks)%2 == 1
}

// Resume appends a start mark if the timer is stopped. Resuming a running
// timer is a no-op, so repeated presses of the same key cannot double-open
// an interval.
func (t *Timer) Resume() {
	if len(t.marks)%2 == 0 {
		t.marks = append(t.marks, t.now())
	}
}

// Pause appends an end mark if the timer is running, closing the open
// interval. Pausing a stopped timer is a no-op.
func (t *Timer) Pause() {
	if len(t.marks)%2 == 1 {
		t.marks = append(t.marks, t.now())
	}
}

// Stop is Pause under the name the shutdown path uses.
func (t *Timer) Stop() {
	t.Pause()
}

// Elapsed sums the closed intervals plus, for a running timer, the span
// from the open start mark to the current clock reading. It never mutates
// the timer and may be called at any time.
func (t *Timer) Elapsed() time.Duration {
	var total time.Duration
	for i := 0; i < len(t.marks); i += 2 {
		end := t.now()
		if i+1 < len(t.marks) {
			end = t.marks[i+1]
		}
		total += end.Sub(t.marks[i])
	}
	return total
}

// Seconds returns the elapsed time truncated (not rounded) to whole
// seconds.
func (t *Timer) Seconds() int {
	return int(t.Elapsed() / time.Second)
}
