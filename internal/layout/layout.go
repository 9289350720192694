package layout

// Layout constants
const (
	DefaultListPercent = 30
	MinListPercent     = 15
	MaxListPercent     = 60
	HeaderHeight       = 3
	LogHeight          = 12 // 10 visible entries plus borders
	HelpBarHeight      = 1
	MinPanelWidth      = 20
	MinPanelHeight     = 5
)

// Layout holds calculated dimensions for all bands and panes. The vertical
// order is fixed: header, body (file list | editor), log, help bar.
type Layout struct {
	TotalWidth  int
	TotalHeight int

	// Body split
	ListWidth   int
	EditorWidth int
	BodyHeight  int
}

// Calculate computes pane dimensions from the terminal size. listPercent
// controls the fractional width of the file list pane.
func Calculate(width, height int, listPercent int) Layout {
	l := Layout{
		TotalWidth:  width,
		TotalHeight: height,
	}

	if listPercent < MinListPercent {
		listPercent = MinListPercent
	}
	if listPercent > MaxListPercent {
		listPercent = MaxListPercent
	}

	l.ListWidth = max(width*listPercent/100, MinPanelWidth)
	l.EditorWidth = max(width-l.ListWidth, MinPanelWidth)
	if l.ListWidth+l.EditorWidth > width {
		l.EditorWidth = width - l.ListWidth
	}

	l.BodyHeight = max(height-HeaderHeight-LogHeight-HelpBarHeight, MinPanelHeight)

	return l
}

// ContentWidth returns the inner width of a pane (excluding borders).
func (l Layout) ContentWidth(panelWidth int) int {
	return max(panelWidth-2, 0)
}

// ContentHeight returns the inner height of a pane (excluding borders).
func (l Layout) ContentHeight(panelHeight int) int {
	return max(panelHeight-2, 0)
}

// LogEntryRows returns how many log entries fit in the log band.
func (l Layout) LogEntryRows() int {
	return max(LogHeight-2, 0)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
