package tui

import (
	"strings"

	"github.com/exhuma/stopwatch/internal/timer"
)

// RenderReport formats the end-of-session summary printed after a
// single-display session: one line per timer, sorted by label. The caller
// must have closed all intervals first so the totals are settled.
func RenderReport(snap timer.Snapshot) string {
	var b strings.Builder
	b.WriteString(DefaultTheme.Header.Render("--- Report ------------"))
	b.WriteByte('\n')
	for _, e := range snap.Entries {
		b.WriteString(formatEntry(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderBanner formats the startup legend shown once before the live view.
func RenderBanner() string {
	var b strings.Builder
	b.WriteString(DefaultTheme.Header.Render("=== Special Characters ==="))
	b.WriteByte('\n')
	b.WriteString("    q: quit\n")
	b.WriteString("    p: pause/resume the active timer\n")
	b.WriteString("    *: remove (reset) the active timer\n")
	b.WriteString(DefaultTheme.Header.Render("=========================="))
	b.WriteString("\n\n")
	b.WriteString("Press any other key to start a timer with that name.\n")
	b.WriteString(DefaultTheme.Dim.Render(`All keys (except "p" and "q") are case sensitive, so "T" and "t" are distinct timers.`))
	b.WriteByte('\n')
	return b.String()
}
