package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/exhuma/stopwatch/internal/timer"
)

func TestRenderStatusEmptySnapshot(t *testing.T) {
	snap := timer.Snapshot{}
	if got := renderStatus(snap, false, DefaultTheme); got != "" {
		t.Fatalf("expected empty line for empty snapshot, got %q", got)
	}
	if got := renderStatus(snap, true, DefaultTheme); got != "" {
		t.Fatalf("expected empty line in single mode too, got %q", got)
	}
}

func TestRenderStatusMultiShowsAllSorted(t *testing.T) {
	snap := timer.Snapshot{
		Entries: []timer.Entry{
			{Label: 'a', Seconds: 2},
			{Label: 'b', Seconds: 1},
		},
		Active: 'b',
	}
	plain := ansi.Strip(renderStatus(snap, false, DefaultTheme))
	want := "a: 00:00:02 | b: 00:00:01"
	if plain != want {
		t.Fatalf("status = %q, want %q", plain, want)
	}
}

func TestRenderStatusHighlightsActive(t *testing.T) {
	snap := timer.Snapshot{
		Entries: []timer.Entry{
			{Label: 'a', Seconds: 2},
			{Label: 'b', Seconds: 1},
		},
		Active: 'b',
	}
	styled := renderStatus(snap, false, DefaultTheme)
	want := DefaultTheme.Active.Render(formatEntry(timer.Entry{Label: 'b', Seconds: 1}))
	if !strings.Contains(styled, want) {
		t.Fatalf("expected the active entry rendered through the Active style, got %q", styled)
	}
}

func TestRenderStatusSingleShowsActiveOnly(t *testing.T) {
	snap := timer.Snapshot{
		Entries: []timer.Entry{
			{Label: 'a', Seconds: 2},
			{Label: 'b', Seconds: 1},
		},
		Active: 'b',
	}
	plain := ansi.Strip(renderStatus(snap, true, DefaultTheme))
	if plain != "b: 00:00:01" {
		t.Fatalf("single-mode status = %q, want only the active entry", plain)
	}
}

func TestRenderStatusSingleNoActive(t *testing.T) {
	snap := timer.Snapshot{
		Entries: []timer.Entry{{Label: 'a', Seconds: 2}},
		Paused:  true,
	}
	if got := renderStatus(snap, true, DefaultTheme); got != "" {
		t.Fatalf("expected no output with nothing active, got %q", got)
	}
}

func TestTruncateLine(t *testing.T) {
	line := strings.Repeat("x", 40)
	if got := truncateLine(line, 0); got != line {
		t.Fatalf("zero width must not truncate")
	}
	if got := truncateLine(line, 80); got != line {
		t.Fatalf("wide terminal must not truncate")
	}
	got := truncateLine(line, 10)
	if w := ansi.StringWidth(got); w > 10 {
		t.Fatalf("truncated line is %d cells wide, want <= 10", w)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncation suffix, got %q", got)
	}
}
