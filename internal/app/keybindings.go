package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global key bindings. Pane-local navigation lives in
// the pane components.
type KeyMap struct {
	Quit      key.Binding // plain quit, disabled while the editor captures text
	ForceQuit key.Binding // works in every focus
	FocusNext key.Binding

	GitStatus key.Binding
	Save      key.Binding
	Run       key.Binding

	CycleTheme key.Binding
	ShrinkList key.Binding
	WidenList  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		GitStatus: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "git status"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run preview"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("alt+t"),
			key.WithHelp("alt+t", "cycle theme"),
		),
		ShrinkList: key.NewBinding(
			key.WithKeys("alt+["),
			key.WithHelp("alt+[", "shrink list"),
		),
		WidenList: key.NewBinding(
			key.WithKeys("alt+]"),
			key.WithHelp("alt+]", "widen list"),
		),
	}
}

// ShortHelp returns the bindings shown in the help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.FocusNext, k.GitStatus, k.Save, k.Run}
}

// FullHelp returns all binding groups.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.ForceQuit, k.FocusNext},
		{k.GitStatus, k.Save, k.Run},
		{k.CycleTheme, k.ShrinkList, k.WidenList},
	}
}
