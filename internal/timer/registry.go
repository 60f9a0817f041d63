package timer

import (
	"sort"
	"sync"
	"time"
)

// Action is the side effect a keystroke asks the caller to perform beyond
// the registry mutation itself.
type Action int

const (
	// ActionNone means the keystroke was fully handled in-registry.
	ActionNone Action = iota
	// ActionQuit asks the caller to shut the session down.
	ActionQuit
	// ActionClearLine asks the caller to erase the live status line.
	ActionClearLine
)

// Entry is one timer's row in a snapshot or report.
type Entry struct {
	Label   rune
	Seconds int
}

// Snapshot is a consistent, fully-applied view of the registry taken under
// its lock. Entries are sorted by label ascending. Active is zero when no
// timer is active.
type Snapshot struct {
	Entries []Entry
	Active  rune
	Paused  bool
}

// Registry owns the label→Timer mapping and the active-timer state. It is
// the only mutable resource shared between the key dispatch path and the
// render/report readers, so every method takes the registry lock; a reader
// observes either the pre-keystroke or the post-keystroke state, never a
// partially applied one.
type Registry struct {
	mu     sync.Mutex
	now    func() time.Time
	timers map[rune]*Timer
	active rune // 0 when no timer is active
	last   rune // survives a pause so resume can restore it
	paused bool
}

// NewRegistry returns an empty registry on the wall clock.
func NewRegistry() *Registry {
	return NewRegistryWithClock(time.Now)
}

// NewRegistryWithClock returns an empty registry reading time from clock.
// Tests inject a fake clock here to make elapsed-time properties exact.
func NewRegistryWithClock(clock func() time.Time) *Registry {
	if clock == nil {
		clock = time.Now
	}
	return &Registry{
		now:    clock,
		timers: make(map[rune]*Timer),
	}
}

// OnKey applies one keystroke to the registry and returns the side effect
// the caller must perform. It is the single entry point of the state
// machine:
//
//	q/Q   quit, no mutation
//	*     discard the active timer, or no-op if none is active
//	p/P   pause everything / resume the remembered timer
//	else  select-or-create the timer for that exact key
func (r *Registry) OnKey(k rune) Action {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch k {
	case 'q', 'Q':
		return ActionQuit
	case '*':
		if r.active == 0 {
			return ActionNone
		}
		delete(r.timers, r.active)
		r.active = 0
		r.last = 0
		return ActionClearLine
	case 'p', 'P':
		r.togglePause()
		return ActionNone
	default:
		r.selectTimer(k)
		return ActionNone
	}
}

func (r *Registry) togglePause() {
	if r.last == 0 {
		// Nothing was ever selected; pause has no meaning yet.
		return
	}
	if r.paused {
		if t, ok := r.timers[r.last]; ok {
			t.Resume()
			r.active = r.last
		}
		r.paused = false
		return
	}
	for _, t := range r.timers {
		t.Pause()
	}
	r.paused = true
	r.active = 0
}

func (r *Registry) selectTimer(k rune) {
	t, ok := r.timers[k]
	if !ok {
		t = NewTimer(k, r.now)
		r.timers[k] = t
	}
	for label, other := range r.timers {
		if label != k {
			other.Pause()
		}
	}
	t.Resume()
	r.active = k
	r.last = k
	r.paused = false
}

// StopAll closes the open interval on every timer and clears the active
// label. The shutdown path calls it after the last keystroke and before
// the final report so the report reads only closed intervals.
func (r *Registry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.timers {
		t.Stop()
	}
	r.active = 0
}

// Snapshot returns a consistent view of every timer for one render tick or
// for the final report.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, 0, len(r.timers))
	for label, t := range r.timers {
		entries = append(entries, Entry{Label: label, Seconds: t.Seconds()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
	return Snapshot{Entries: entries, Active: r.active, Paused: r.paused}
}

// Len returns the number of tracked timers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}
