package tui

import (
	"fmt"

	"github.com/exhuma/stopwatch/internal/timer"
)

// formatClock renders whole seconds as HH:MM:SS. Hours widen past two
// digits rather than wrapping.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatEntry(e timer.Entry) string {
	return fmt.Sprintf("%c: %s", e.Label, formatClock(e.Seconds))
}
