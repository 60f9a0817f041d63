package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/exhuma/stopwatch/internal/config"
	"github.com/exhuma/stopwatch/internal/timer"
)

// renderStatus formats one registry snapshot as the in-place status line.
// An empty string means the tick carries nothing to show; the caller keeps
// the previously rendered line instead of blanking it.
func renderStatus(snap timer.Snapshot, single bool, th Theme) string {
	if len(snap.Entries) == 0 {
		return ""
	}

	if single {
		if snap.Active == 0 {
			return ""
		}
		for _, e := range snap.Entries {
			if e.Label == snap.Active {
				return th.Active.Render(formatEntry(e))
			}
		}
		return ""
	}

	parts := make([]string, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		s := formatEntry(e)
		if e.Label == snap.Active {
			s = th.Active.Render(s)
		} else {
			s = th.Entry.Render(s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, config.EntrySeparator)
}

func truncateLine(text string, max int) string {
	if max <= 0 {
		return text
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
