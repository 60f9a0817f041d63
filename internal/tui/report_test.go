package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/exhuma/stopwatch/internal/timer"
)

func TestRenderReportListsTimersSorted(t *testing.T) {
	snap := timer.Snapshot{
		Entries: []timer.Entry{
			{Label: 'A', Seconds: 3},
			{Label: 'a', Seconds: 2},
			{Label: 'b', Seconds: 61},
		},
	}
	plain := ansi.Strip(RenderReport(snap))
	lines := strings.Split(strings.TrimRight(plain, "\n"), "\n")
	want := []string{
		"--- Report ------------",
		"A: 00:00:03",
		"a: 00:00:02",
		"b: 00:01:01",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderReportEmptyRegistry(t *testing.T) {
	plain := ansi.Strip(RenderReport(timer.Snapshot{}))
	if !strings.Contains(plain, "--- Report") {
		t.Fatalf("expected the report header even with no timers, got %q", plain)
	}
}

func TestRenderBannerMentionsSpecialKeys(t *testing.T) {
	plain := ansi.Strip(RenderBanner())
	for _, want := range []string{"q: quit", "p: pause", "*: remove", "case sensitive"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("banner missing %q:\n%s", want, plain)
		}
	}
}
