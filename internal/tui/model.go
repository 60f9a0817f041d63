// Package tui renders the live timer status line and dispatches raw
// keystrokes to the timer registry.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/exhuma/stopwatch/internal/timer"
)

// Model is the bubbletea model for the live session. The registry is the
// shared state; the model only caches the last rendered status line so an
// empty snapshot (or a paused single-timer view) leaves the line frozen
// on screen instead of blanking it.
type Model struct {
	registry *timer.Registry
	single   bool
	keys     keyMap
	help     help.Model
	theme    Theme
	status   string
	width    int
	quitting bool
}

func NewModel(reg *timer.Registry, single bool) Model {
	return Model{
		registry: reg,
		single:   single,
		keys:     defaultKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.refreshed(), tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// refreshed recomputes the cached status line from a fresh snapshot. A
// tick with nothing to show keeps the previous line.
func (m Model) refreshed() Model {
	if line := renderStatus(m.registry.Snapshot(), m.single, m.theme); line != "" {
		m.status = truncateLine(line, m.width)
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	r, ok := keyRune(msg)
	if !ok {
		return m, nil
	}
	switch m.registry.OnKey(r) {
	case timer.ActionQuit:
		return m.quit()
	case timer.ActionClearLine:
		m.status = ""
		return m, nil
	default:
		return m.refreshed(), nil
	}
}

// quit closes every open interval before stopping the program, so the
// final frame and the exit report read only settled totals.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.registry.StopAll()
	m = m.refreshed()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		// Leave the final totals on screen, drop the help footer.
		return m.status + "\n"
	}
	if m.status == "" {
		return m.help.View(m.keys) + "\n"
	}
	return m.status + "\n" + m.help.View(m.keys) + "\n"
}

// keyRune maps a key press to the timer label it selects. Non-character
// keys (arrows, function keys, control chords) are ignored rather than
// minted into garbage labels.
func keyRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return msg.Runes[0], true
		}
		return 0, false // pasted text is not a keystroke
	case tea.KeySpace:
		return ' ', true
	}
	return 0, false
}
