package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/exhuma/stopwatch/internal/config"
)

// --- Messages ---
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}
