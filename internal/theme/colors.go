package theme

import "github.com/charmbracelet/lipgloss"

// Semantic colors, reassigned whenever a theme is applied. Components
// reference these rather than raw hex values.
var (
	ColorPrimary   = lipgloss.Color("#7AA2F7") // accents, focused borders
	ColorSecondary = lipgloss.Color("#7DCFFF") // titles, branch name
	ColorFocus     = lipgloss.Color("#BB9AF7") // selected list entry
	ColorSuccess   = lipgloss.Color("#9ECE6A") // RUNNING status, saved files
	ColorError     = lipgloss.Color("#F7768E") // load/save failures
	ColorWarning   = lipgloss.Color("#E0AF68") // OFFLINE status, modified files

	TextPrimary   = lipgloss.Color("#C0CAF5") // body text
	TextSecondary = lipgloss.Color("#A9B1D6") // log entries
	TextMuted     = lipgloss.Color("#565F89") // placeholders, hints
	TextDim       = lipgloss.Color("#3B4261") // inactive borders
)
