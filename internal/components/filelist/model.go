package filelist

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docman/internal/components"
	"docman/internal/theme"
)

// Messages
type (
	// SelectionChangedMsg is sent when navigation lands on an entry. The
	// receiver is expected to reload the file at Path.
	SelectionChangedMsg struct {
		Path  string
		Index int
	}
)

// KeyMap defines the key bindings for the file list.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Filter key.Binding
	Clear  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
		),
	}
}

// Model is the file list component. It owns the selection cursor; the
// entry slice is rebuilt wholesale on every rescan.
type Model struct {
	components.Base

	root    string
	entries []string // full scan result, traversal order
	visible []int    // indices into entries after filtering
	cursor  int      // position within visible, -1 when empty
	offset  int      // scroll offset

	filtering   bool // filter input open
	filterInput textinput.Model
	query       string

	keys KeyMap
}

// New creates an empty file list rooted at root.
func New(root string) Model {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 100
	ti.Prompt = "/"

	return Model{
		root:        root,
		cursor:      -1,
		filterInput: ti,
		keys:        DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus gives the list keyboard focus.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes keyboard focus. An open filter input stays open so the
// query survives a round trip through the other panes.
func (m Model) Blur() Model {
	m.Base.Blur()
	return m
}

// SetSize updates the pane dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	return m.scrollToCursor()
}

// SetEntries replaces the entry list. The selection is kept on the same
// path when it survives the rescan, otherwise clamped into range (or
// cleared when the list is empty).
func (m Model) SetEntries(entries []string) Model {
	var selectedPath string
	if p, ok := m.Selected(); ok {
		selectedPath = p
	}

	m.entries = entries
	m = m.applyFilter()

	if selectedPath != "" {
		for vi, ei := range m.visible {
			if m.entries[ei] == selectedPath {
				m.cursor = vi
				break
			}
		}
	}
	return m.clamp()
}

// applyFilter rebuilds the visible index from the current query.
func (m Model) applyFilter() Model {
	m.visible = nil
	q := strings.ToLower(m.query)
	for i, path := range m.entries {
		if q == "" || strings.Contains(strings.ToLower(m.display(path)), q) {
			m.visible = append(m.visible, i)
		}
	}
	return m.clamp()
}

// clamp keeps the cursor inside [0, len(visible)), or at -1 when empty.
func (m Model) clamp() Model {
	if len(m.visible) == 0 {
		m.cursor = -1
		m.offset = 0
		return m
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	return m.scrollToCursor()
}

// Selected returns the path under the cursor, if any.
func (m Model) Selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return "", false
	}
	return m.entries[m.visible[m.cursor]], true
}

// SelectedIndex returns the selection as an index into the full entry
// list, or -1 when nothing is selected.
func (m Model) SelectedIndex() int {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return -1
	}
	return m.visible[m.cursor]
}

// Entries returns the full entry list.
func (m Model) Entries() []string {
	return m.entries
}

// Len returns the number of entries after filtering.
func (m Model) Len() int {
	return len(m.visible)
}

// Filtering reports whether the filter input is open and capturing keys.
func (m Model) Filtering() bool {
	return m.filtering
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused() {
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		// No-op on an empty list; never underflows.
		if len(m.visible) == 0 {
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
		}
		m = m.scrollToCursor()
		return m, m.selectionCmd()

	case key.Matches(keyMsg, m.keys.Down):
		if len(m.visible) == 0 {
			return m, nil
		}
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		m = m.scrollToCursor()
		return m, m.selectionCmd()

	case key.Matches(keyMsg, m.keys.Home):
		if len(m.visible) == 0 {
			return m, nil
		}
		m.cursor = 0
		m = m.scrollToCursor()
		return m, m.selectionCmd()

	case key.Matches(keyMsg, m.keys.End):
		if len(m.visible) == 0 {
			return m, nil
		}
		m.cursor = len(m.visible) - 1
		m = m.scrollToCursor()
		return m, m.selectionCmd()

	case key.Matches(keyMsg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.query)
		cmd := m.filterInput.Focus()
		return m, tea.Batch(cmd, textinput.Blink)

	case key.Matches(keyMsg, m.keys.Clear):
		if m.query != "" {
			m.query = ""
			m.filterInput.SetValue("")
			m = m.applyFilter()
		}
		return m, nil
	}

	return m, nil
}

// updateFilter handles keys while the filter input is open.
func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.filtering = false
		m.filterInput.Blur()
		m.query = ""
		m.filterInput.SetValue("")
		return m.applyFilter(), nil

	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, m.selectionCmd()
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.query = m.filterInput.Value()
	return m.applyFilter(), cmd
}

// selectionCmd emits the current selection, if any.
func (m Model) selectionCmd() tea.Cmd {
	path, ok := m.Selected()
	if !ok {
		return nil
	}
	index := m.SelectedIndex()
	return func() tea.Msg {
		return SelectionChangedMsg{Path: path, Index: index}
	}
}

// scrollToCursor keeps the cursor inside the visible window.
func (m Model) scrollToCursor() Model {
	rows := m.viewRows()
	if rows <= 0 {
		return m
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m
}

// viewRows returns how many entry rows fit, accounting for the filter line.
func (m Model) viewRows() int {
	_, h := m.Size()
	if m.filtering || m.query != "" {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}

// display returns the path shown for an entry, relative to the root.
func (m Model) display(path string) string {
	if rel, err := filepath.Rel(m.root, path); err == nil {
		return rel
	}
	return path
}

// View renders the list with the selected entry highlighted.
func (m Model) View() string {
	w, _ := m.Size()
	var b strings.Builder

	if m.filtering {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	} else if m.query != "" {
		b.WriteString(theme.TextMutedStyle.Render("/" + m.query))
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(theme.TextMutedStyle.Render("(no documents found)"))
		return b.String()
	}

	rows := m.viewRows()
	end := m.offset + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for vi := m.offset; vi < end; vi++ {
		path := m.entries[m.visible[vi]]
		label := theme.FileIcon(path) + " " + m.display(path)

		var line string
		if vi == m.cursor {
			line = theme.ListSelected.Render("❯ " + label)
		} else {
			line = theme.ListEntry.Render("  " + label)
		}
		if w > 0 {
			// MaxWidth truncates without splitting ANSI escapes.
			line = lipgloss.NewStyle().MaxWidth(w).Render(line)
		}
		b.WriteString(line)
		if vi < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
