package logview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"docman/internal/components"
	"docman/internal/theme"
)

// TailSize is how many entries the unfocused pane shows.
const TailSize = 10

// Model is the console log pane. Entries are append-only and retained for
// the whole session; only the rendered view is truncated. Newest entries
// render first. When focused, the full history scrolls in a viewport.
type Model struct {
	components.Base

	entries  []string
	viewport viewport.Model
	ready    bool
}

// New creates an empty log pane.
func New() Model {
	return Model{}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus gives the console keyboard focus for scrollback.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes keyboard focus and snaps back to the newest entries.
func (m Model) Blur() Model {
	m.Base.Blur()
	if m.ready {
		m.viewport.GotoTop()
	}
	return m
}

// Append adds an entry at the end of the history.
func (m Model) Append(line string) Model {
	m.entries = append(m.entries, line)
	if m.ready {
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoTop()
	}
	return m
}

// AppendAll adds several entries preserving their order.
func (m Model) AppendAll(lines []string) Model {
	for _, line := range lines {
		m = m.Append(line)
	}
	return m
}

// Entries returns the full history, oldest first.
func (m Model) Entries() []string {
	return m.entries
}

// Len returns the number of retained entries.
func (m Model) Len() int {
	return len(m.entries)
}

// Update handles messages. Scrolling only happens while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize updates the pane dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.viewport.SetContent(m.renderHistory())
	return m
}

// View renders the newest entries first. Unfocused panes show the tail
// only; a focused pane exposes the whole history through the viewport.
func (m Model) View() string {
	if len(m.entries) == 0 {
		return theme.TextMutedStyle.Render("(console is quiet)")
	}
	if m.Focused() && m.ready {
		return m.viewport.View()
	}
	return m.renderTail()
}

// renderTail renders the TailSize most recent entries, newest first.
func (m Model) renderTail() string {
	var b strings.Builder
	count := 0
	for i := len(m.entries) - 1; i >= 0 && count < TailSize; i-- {
		if count > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderEntry(m.entries[i]))
		count++
	}
	return b.String()
}

// renderHistory renders every entry, newest first, for the viewport.
func (m Model) renderHistory() string {
	lines := make([]string, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		lines = append(lines, m.renderEntry(m.entries[i]))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(entry string) string {
	if strings.HasPrefix(entry, "--") {
		return theme.LogHeaderStyle.Render(entry)
	}
	return theme.LogEntryStyle.Render(entry)
}
