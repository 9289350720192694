package theme

import "github.com/charmbracelet/lipgloss"

// Available themes
var (
	themes       []*Theme
	currentIndex int
)

func init() {
	themes = []*Theme{
		TokyoDriftTheme(),
		PaperInkTheme(),
		TerminalGreenTheme(),
	}
	currentIndex = 0
	ApplyTheme(themes[0])
}

// AllThemes returns all available themes.
func AllThemes() []*Theme {
	return themes
}

// CurrentTheme returns the currently active theme.
func CurrentTheme() *Theme {
	return themes[currentIndex]
}

// CurrentThemeIndex returns the index of the current theme.
func CurrentThemeIndex() int {
	return currentIndex
}

// NextTheme cycles to the next theme and applies it.
func NextTheme() *Theme {
	currentIndex = (currentIndex + 1) % len(themes)
	ApplyTheme(themes[currentIndex])
	return themes[currentIndex]
}

// SetThemeIndex sets the current theme by index and applies it.
// Returns false if index is out of bounds.
func SetThemeIndex(index int) bool {
	if index < 0 || index >= len(themes) {
		return false
	}
	currentIndex = index
	ApplyTheme(themes[currentIndex])
	return true
}

// ApplyTheme sets the semantic color variables and regenerates styles.
func ApplyTheme(t *Theme) {
	ColorPrimary = t.Colors.Primary
	ColorSecondary = t.Colors.Secondary
	ColorFocus = t.Colors.Focus
	ColorSuccess = t.Colors.Success
	ColorError = t.Colors.Error
	ColorWarning = t.Colors.Warning

	TextPrimary = t.Colors.TextPrimary
	TextSecondary = t.Colors.TextSecondary
	TextMuted = t.Colors.TextMuted
	TextDim = t.Colors.TextDim

	regenerateStyles()
}

// TokyoDriftTheme - cool blues on a night-city backdrop
func TokyoDriftTheme() *Theme {
	return &Theme{
		Name: "Tokyo Drift",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#7AA2F7"),
			Secondary:     lipgloss.Color("#7DCFFF"),
			Focus:         lipgloss.Color("#BB9AF7"),
			Success:       lipgloss.Color("#9ECE6A"),
			Error:         lipgloss.Color("#F7768E"),
			Warning:       lipgloss.Color("#E0AF68"),
			TextPrimary:   lipgloss.Color("#C0CAF5"),
			TextSecondary: lipgloss.Color("#A9B1D6"),
			TextMuted:     lipgloss.Color("#565F89"),
			TextDim:       lipgloss.Color("#3B4261"),
		},
	}
}

// PaperInkTheme - warm monochrome, easy on bright terminals
func PaperInkTheme() *Theme {
	return &Theme{
		Name: "Paper & Ink",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#D4A373"),
			Secondary:     lipgloss.Color("#CCD5AE"),
			Focus:         lipgloss.Color("#E9EDC9"),
			Success:       lipgloss.Color("#A3B18A"),
			Error:         lipgloss.Color("#BC4749"),
			Warning:       lipgloss.Color("#DDA15E"),
			TextPrimary:   lipgloss.Color("#FEFAE0"),
			TextSecondary: lipgloss.Color("#E0DCC5"),
			TextMuted:     lipgloss.Color("#8A856E"),
			TextDim:       lipgloss.Color("#55523F"),
		},
	}
}

// TerminalGreenTheme - phosphor nostalgia
func TerminalGreenTheme() *Theme {
	return &Theme{
		Name: "Terminal Green",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#33FF33"),
			Secondary:     lipgloss.Color("#00CC66"),
			Focus:         lipgloss.Color("#99FF99"),
			Success:       lipgloss.Color("#33FF33"),
			Error:         lipgloss.Color("#FF5555"),
			Warning:       lipgloss.Color("#FFFF55"),
			TextPrimary:   lipgloss.Color("#CCFFCC"),
			TextSecondary: lipgloss.Color("#99CC99"),
			TextMuted:     lipgloss.Color("#4D804D"),
			TextDim:       lipgloss.Color("#2E4D2E"),
		},
	}
}
