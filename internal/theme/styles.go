package theme

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Border definitions
var (
	// HeavyBorder marks the focused pane
	HeavyBorder = lipgloss.Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}

	// SoftBorder for unfocused panes and the header band
	SoftBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
)

// Styles regenerated on every theme change.
var (
	// Header band
	HeaderText    lipgloss.Style
	StatusRunning lipgloss.Style
	StatusOffline lipgloss.Style
	BranchStyle   lipgloss.Style

	// File list
	ListEntry    lipgloss.Style
	ListSelected lipgloss.Style

	// Log pane
	LogEntryStyle  lipgloss.Style
	LogHeaderStyle lipgloss.Style

	// Shared text
	TextBody       lipgloss.Style
	TextMutedStyle lipgloss.Style
	ErrorStyle     lipgloss.Style

	// Help bar
	HelpBarStyle lipgloss.Style
)

// regenerateStyles rebuilds all style variables from the semantic colors.
// Called when the theme changes.
func regenerateStyles() {
	HeaderText = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	StatusRunning = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	StatusOffline = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	BranchStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	ListEntry = lipgloss.NewStyle().
		Foreground(TextPrimary)

	ListSelected = lipgloss.NewStyle().
		Foreground(ColorFocus).
		Bold(true)

	LogEntryStyle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	LogHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	TextBody = lipgloss.NewStyle().
		Foreground(TextPrimary)

	TextMutedStyle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	HelpBarStyle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)
}

// StatusStyle returns the style for a status flag token.
func StatusStyle(running bool) lipgloss.Style {
	if running {
		return StatusRunning
	}
	return StatusOffline
}

// PanelTitleOptions configures what to show in panel borders.
type PanelTitleOptions struct {
	Title       string // Title text embedded in the top border
	BottomHints string // Key hints for the bottom border, empty to omit
}

// RenderPanelWithTitle renders content in a panel with the title embedded
// in the border. Focused panes get the heavy border in the primary accent.
func RenderPanelWithTitle(content string, opts PanelTitleOptions, width, height int, focused bool) string {
	if width < 4 || height < 2 {
		return ""
	}

	var border lipgloss.Border
	var borderColor, titleColor lipgloss.Color
	if focused {
		border = HeavyBorder
		borderColor = ColorPrimary
		titleColor = ColorSecondary
	} else {
		border = SoftBorder
		borderColor = TextDim
		titleColor = TextDim
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(TextMuted)

	innerWidth := width - 2

	topBorder := buildTopBorder(border, borderStyle, titleStyle, opts.Title, innerWidth)
	bottomBorder := buildBottomBorder(border, borderStyle, hintStyle, opts.BottomHints, innerWidth)

	contentHeight := height - 2
	if contentHeight < 0 {
		contentHeight = 0
	}

	contentLines := strings.Split(content, "\n")
	renderedLines := make([]string, contentHeight)

	// MaxWidth truncates ANSI-styled lines without breaking escapes.
	lineStyle := lipgloss.NewStyle().MaxWidth(innerWidth)

	for i := 0; i < contentHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = lineStyle.Render(line)
		lineLen := lipgloss.Width(line)
		if lineLen < innerWidth {
			line = line + strings.Repeat(" ", innerWidth-lineLen)
		}
		renderedLines[i] = borderStyle.Render(border.Left) + line + borderStyle.Render(border.Right)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	result.WriteString(strings.Join(renderedLines, "\n"))
	result.WriteString("\n")
	result.WriteString(bottomBorder)

	return result.String()
}

// buildTopBorder creates the top border with an embedded title.
func buildTopBorder(border lipgloss.Border, borderStyle, titleStyle lipgloss.Style, title string, innerWidth int) string {
	if title == "" {
		return borderStyle.Render(border.TopLeft) +
			borderStyle.Render(strings.Repeat(border.Top, innerWidth)) +
			borderStyle.Render(border.TopRight)
	}

	titleSegment := "[ " + titleStyle.Render(title) + " ]"
	titleWidth := utf8.RuneCountInString(stripAnsi(titleSegment))

	leftFiller := 2
	rightFiller := innerWidth - leftFiller - titleWidth
	if rightFiller < 0 {
		rightFiller = 0
	}

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.TopLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Top, leftFiller)))
	result.WriteString(titleSegment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller)))
	result.WriteString(borderStyle.Render(border.TopRight))

	return result.String()
}

// buildBottomBorder creates the bottom border with optional key hints.
func buildBottomBorder(border lipgloss.Border, borderStyle, hintStyle lipgloss.Style, hints string, innerWidth int) string {
	if hints == "" {
		return borderStyle.Render(border.BottomLeft) +
			borderStyle.Render(strings.Repeat(border.Bottom, innerWidth)) +
			borderStyle.Render(border.BottomRight)
	}

	hintSegment := "[ " + hintStyle.Render(hints) + " ]"
	hintWidth := utf8.RuneCountInString(stripAnsi(hintSegment))

	leftFiller := 2
	rightFiller := innerWidth - leftFiller - hintWidth
	if rightFiller < 0 {
		rightFiller = 0
	}

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.BottomLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, leftFiller)))
	result.WriteString(hintSegment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, rightFiller)))
	result.WriteString(borderStyle.Render(border.BottomRight))

	return result.String()
}

// stripAnsi removes ANSI escape sequences from a string.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
