package editor

import (
	"bytes"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docman/internal/components"
	"docman/internal/theme"
)

// Model is the editor pane. While focused it is a live textarea; blurred
// it shows a syntax-highlighted, read-only rendering of the buffer.
type Model struct {
	components.Base

	textarea textarea.Model
	path     string
	loaded   bool

	// Cached highlight of the buffer, refreshed on load and on blur.
	highlighted string
}

// New creates an empty editor pane.
func New() Model {
	ta := textarea.New()
	ta.Placeholder = ""
	ta.ShowLineNumbers = true
	ta.CharLimit = 0 // no limit; documents can be long

	return Model{textarea: ta}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetContent replaces the buffer with freshly loaded file content.
func (m Model) SetContent(path, content string) Model {
	m.path = path
	m.loaded = true
	m.textarea.SetValue(content)
	m.highlighted = highlight(path, content)
	return m
}

// Value returns the current buffer text.
func (m Model) Value() string {
	return m.textarea.Value()
}

// Path returns the file backing the buffer, empty when nothing is loaded.
func (m Model) Path() string {
	return m.path
}

// Loaded reports whether a file has been loaded into the buffer.
func (m Model) Loaded() bool {
	return m.loaded
}

// Update handles messages. Keys reach the textarea only while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// Focus switches the pane into editing mode.
func (m Model) Focus() Model {
	m.Base.Focus()
	m.textarea.Focus()
	return m
}

// Blur leaves editing mode and refreshes the preview highlight.
func (m Model) Blur() Model {
	m.Base.Blur()
	m.textarea.Blur()
	m.highlighted = highlight(m.path, m.textarea.Value())
	return m
}

// SetSize updates the pane dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	m.textarea.SetWidth(width)
	m.textarea.SetHeight(height)
	return m
}

// View renders the textarea when focused, the highlighted preview otherwise.
func (m Model) View() string {
	if !m.loaded {
		return m.renderPlaceholder()
	}
	if m.Focused() {
		return m.textarea.View()
	}
	return m.highlighted
}

func (m Model) renderPlaceholder() string {
	w, h := m.Size()
	return lipgloss.NewStyle().
		Width(w).
		Height(h).
		Foreground(theme.TextMuted).
		Align(lipgloss.Center, lipgloss.Center).
		Render("Select a document to view its contents...")
}

// highlight returns content with terminal syntax colors applied. Falls
// back to the raw text when tokenizing fails.
func highlight(path, content string) string {
	var lexer chroma.Lexer
	if path != "" {
		lexer = lexers.Match(filepath.Base(path))
	}
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}
	return buf.String()
}
