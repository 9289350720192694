package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"docman/internal/components/editor"
	"docman/internal/components/filelist"
	"docman/internal/components/logview"
	"docman/internal/git"
	"docman/internal/index"
	"docman/internal/layout"
	"docman/internal/log"
	"docman/internal/state"
	"docman/internal/store"
	"docman/internal/theme"
)

// Version is the application version, set at build time via ldflags
var Version = "dev"

// gitTimeout bounds every git invocation. The status command still blocks
// the loop for its duration, but a wedged git cannot freeze the UI forever.
const gitTimeout = 5 * time.Second

// branchTickInterval is how often the header branch name is refreshed.
const branchTickInterval = 10 * time.Second

// rescanDebounceInterval is how long a burst of file changes must settle
// before the index is rebuilt.
const rescanDebounceInterval = 500 * time.Millisecond

// Model is the root application model. It owns the entire application
// state; panes receive messages only through it.
type Model struct {
	// Panes
	fileList filelist.Model
	edit     editor.Model
	logView  logview.Model

	// Focus and status
	focus  PanelID
	status Status

	// Scan configuration
	rootPath string
	patterns []glob.Glob

	// Git
	gitRunner git.Runner
	branch    string
	isRepo    bool

	// Layout
	layout      layout.Layout
	listPercent int
	keys        KeyMap

	// File watcher
	watcher    *fsnotify.Watcher
	debouncing bool

	// Window dimensions
	width  int
	height int
	ready  bool
}

// New creates the application model rooted at rootPath. The initial scan
// runs here so the first frame already shows the listing.
func New(rootPath string, runner git.Runner) Model {
	saved := state.Load()
	theme.SetThemeIndex(saved.ThemeIndex)

	listPercent := saved.ListPercent
	if listPercent < layout.MinListPercent || listPercent > layout.MaxListPercent {
		listPercent = layout.DefaultListPercent
	}

	patterns := index.DefaultPatterns()

	fl := filelist.New(rootPath)
	fl = fl.SetEntries(index.Scan(rootPath, index.MaxDepth, patterns))
	fl = fl.Focus()

	lv := logview.New()
	lv = lv.Append("[System] Manager started.")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warnf("app: file watcher unavailable: %v", err)
	}

	return Model{
		fileList:    fl,
		edit:        editor.New(),
		logView:     lv,
		focus:       PanelFileList,
		status:      StatusOffline,
		rootPath:    rootPath,
		patterns:    patterns,
		gitRunner:   runner,
		listPercent: listPercent,
		keys:        DefaultKeyMap(),
		watcher:     watcher,
	}
}

// Init initializes the application.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadSelectedCmd(),
		m.refreshBranchCmd(),
		branchTick(),
	}

	if m.watcher != nil {
		for _, dir := range index.Subdirs(m.rootPath, index.MaxDepth) {
			m.watcher.Add(dir)
		}
		cmds = append(cmds, m.watchCmd())
	}

	return tea.Batch(cmds...)
}

// Update handles messages and applies state transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = layout.Calculate(msg.Width, msg.Height, m.listPercent)
		m.ready = true
		m = m.updateSizes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case filelist.SelectionChangedMsg:
		// Navigation landed on an entry: reload it from storage. Unsaved
		// edits to the previous file are discarded by design.
		return m, loadFileCmd(msg.Path)

	case FileLoadedMsg:
		if msg.Err != nil {
			// Previous buffer stays untouched.
			m.logView = m.logView.Append("[File] Load failed: " + msg.Err.Error())
			log.Errorf("app: load %s: %v", msg.Path, msg.Err)
			return m, nil
		}
		m.edit = m.edit.SetContent(msg.Path, msg.Content)
		m.logView = m.logView.Append("[File] Loaded " + msg.Path)
		return m, nil

	case BranchMsg:
		m.branch = msg.Branch
		m.isRepo = msg.IsRepo
		return m, nil

	case branchTickMsg:
		return m, tea.Batch(m.refreshBranchCmd(), branchTick())

	case FileChangeMsg:
		var cmds []tea.Cmd
		cmds = append(cmds, m.watchCmd())

		if msg.Path != "" && msg.Op&fsnotify.Create != 0 {
			if info, err := os.Stat(msg.Path); err == nil && info.IsDir() {
				if !strings.HasPrefix(filepath.Base(msg.Path), ".") {
					m.watcher.Add(msg.Path)
				}
			}
		}

		if !m.debouncing {
			m.debouncing = true
			cmds = append(cmds, tea.Tick(rescanDebounceInterval, func(time.Time) tea.Msg {
				return rescanDebounceMsg{}
			}))
		}
		return m, tea.Batch(cmds...)

	case rescanDebounceMsg:
		m.debouncing = false
		return m.rescan(), nil
	}

	return m.routeToFocused(msg)
}

// handleKey applies the global transition table, then routes anything
// unclaimed to the focused pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The filter input captures everything except the force quit.
	if m.focus == PanelFileList && m.fileList.Filtering() && !key.Matches(msg, m.keys.ForceQuit) {
		return m.routeToFocused(msg)
	}

	// While the editor holds focus, plain letters type into the buffer;
	// only modifier-scoped globals and the focus cycle stay global.
	editing := m.focus == PanelEditor

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.saveState()
		return m, tea.Quit

	case !editing && key.Matches(msg, m.keys.Quit):
		m.saveState()
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusNext):
		m = m.setFocus(m.focus.Next())
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.saveCurrent(), nil

	case !editing && key.Matches(msg, m.keys.GitStatus):
		return m.appendGitStatus(), nil

	case !editing && key.Matches(msg, m.keys.Run):
		m.status = StatusRunning
		m.logView = m.logView.Append("[Preview] Site server started on port 3000")
		return m, nil

	case !editing && key.Matches(msg, m.keys.CycleTheme):
		theme.NextTheme()
		return m, nil

	case !editing && key.Matches(msg, m.keys.ShrinkList):
		return m.resizeList(-5), nil

	case !editing && key.Matches(msg, m.keys.WidenList):
		return m.resizeList(+5), nil
	}

	return m.routeToFocused(msg)
}

// appendGitStatus invokes the status command and appends the header plus
// its output to the console. The call blocks the loop; the command is
// local and bounded by gitTimeout.
func (m Model) appendGitStatus() Model {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	lines := m.gitRunner.StatusLines(ctx)
	m.logView = m.logView.Append("-- Git Status --")
	m.logView = m.logView.AppendAll(lines)
	return m
}

// saveCurrent persists the editor buffer to the loaded file. Nothing is
// logged as saved unless the write fully succeeded.
func (m Model) saveCurrent() Model {
	if !m.edit.Loaded() {
		return m
	}
	path := m.edit.Path()
	if err := store.Save(path, m.edit.Value()); err != nil {
		m.logView = m.logView.Append("[File] Save failed: " + err.Error())
		log.Errorf("app: save %s: %v", path, err)
		return m
	}
	m.logView = m.logView.Append("[File] Saved " + path)
	log.Infof("app: saved %s", path)
	return m
}

// rescan rebuilds the file index wholesale. The selection is clamped by
// the list; the editor buffer is not reloaded except via navigation.
func (m Model) rescan() Model {
	entries := index.Scan(m.rootPath, index.MaxDepth, m.patterns)
	m.fileList = m.fileList.SetEntries(entries)
	return m
}

// resizeList adjusts the file list width percentage by delta.
func (m Model) resizeList(delta int) Model {
	m.listPercent += delta
	if m.listPercent < layout.MinListPercent {
		m.listPercent = layout.MinListPercent
	}
	if m.listPercent > layout.MaxListPercent {
		m.listPercent = layout.MaxListPercent
	}
	m.layout = layout.Calculate(m.width, m.height, m.listPercent)
	return m.updateSizes()
}

// loadSelectedCmd loads the currently selected entry, if any.
func (m Model) loadSelectedCmd() tea.Cmd {
	path, ok := m.fileList.Selected()
	if !ok {
		return nil
	}
	return loadFileCmd(path)
}

// loadFileCmd reads a file from storage.
func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := store.Load(path)
		return FileLoadedMsg{Path: path, Content: content, Err: err}
	}
}

// refreshBranchCmd fetches the current branch for the header.
func (m Model) refreshBranchCmd() tea.Cmd {
	return func() tea.Msg {
		if !m.gitRunner.IsRepo() {
			return BranchMsg{IsRepo: false}
		}
		ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
		defer cancel()
		branch, _ := m.gitRunner.Branch(ctx)
		return BranchMsg{Branch: branch, IsRepo: true}
	}
}

// branchTick schedules the next periodic branch refresh.
func branchTick() tea.Cmd {
	return tea.Tick(branchTickInterval, func(time.Time) tea.Msg {
		return branchTickMsg{}
	})
}

// watchCmd blocks until the watcher reports a change.
func (m Model) watchCmd() tea.Cmd {
	return func() tea.Msg {
		if m.watcher == nil {
			return nil
		}
		for {
			select {
			case event, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				return FileChangeMsg{Path: event.Name, Op: event.Op}
			case <-m.watcher.Errors:
				continue
			}
		}
	}
}

// routeToFocused routes a message to the focused pane.
func (m Model) routeToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case PanelFileList:
		m.fileList, cmd = m.fileList.Update(msg)
	case PanelEditor:
		m.edit, cmd = m.edit.Update(msg)
	case PanelLog:
		m.logView, cmd = m.logView.Update(msg)
	}

	return m, cmd
}

// setFocus moves focus to the target pane.
func (m Model) setFocus(target PanelID) Model {
	switch m.focus {
	case PanelFileList:
		m.fileList = m.fileList.Blur()
	case PanelEditor:
		m.edit = m.edit.Blur()
	case PanelLog:
		m.logView = m.logView.Blur()
	}

	m.focus = target

	switch target {
	case PanelFileList:
		m.fileList = m.fileList.Focus()
	case PanelEditor:
		m.edit = m.edit.Focus()
	case PanelLog:
		m.logView = m.logView.Focus()
	}

	return m
}

// Focus returns the currently focused pane.
func (m Model) Focus() PanelID {
	return m.focus
}

// StatusFlag returns the preview-server flag.
func (m Model) StatusFlag() Status {
	return m.status
}

// updateSizes pushes pane dimensions down after a layout change.
func (m Model) updateSizes() Model {
	listW := m.layout.ContentWidth(m.layout.ListWidth)
	editW := m.layout.ContentWidth(m.layout.EditorWidth)
	bodyH := m.layout.ContentHeight(m.layout.BodyHeight)
	logW := m.layout.ContentWidth(m.layout.TotalWidth)
	logH := m.layout.LogEntryRows()

	m.fileList = m.fileList.SetSize(listW, bodyH)
	m.edit = m.edit.SetSize(editW, bodyH)
	m.logView = m.logView.SetSize(logW, logH)
	return m
}

// View renders the application: header band, file list and editor side by
// side, console log, help bar. Rendering reads state and mutates nothing.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()

	listPanel := theme.RenderPanelWithTitle(
		m.fileList.View(),
		theme.PanelTitleOptions{Title: "FILES", BottomHints: m.listHints()},
		m.layout.ListWidth,
		m.layout.BodyHeight,
		m.focus == PanelFileList,
	)

	editorPanel := theme.RenderPanelWithTitle(
		m.edit.View(),
		theme.PanelTitleOptions{Title: m.editorTitle(), BottomHints: m.editorHints()},
		m.layout.EditorWidth,
		m.layout.BodyHeight,
		m.focus == PanelEditor,
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, editorPanel)

	logPanel := theme.RenderPanelWithTitle(
		m.logView.View(),
		theme.PanelTitleOptions{Title: "CONSOLE"},
		m.layout.TotalWidth,
		layout.LogHeight,
		m.focus == PanelLog,
	)

	helpBar := theme.HelpBarStyle.Render(
		"q quit │ tab focus │ ↑/↓ files │ g git status │ ctrl+s save │ r run preview │ / filter │ alt+t theme",
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, logPanel, helpBar)
}

// renderHeader renders the top band: app name, status flag, scan root and
// branch. The border takes the status color so the flag reads at a glance.
func (m Model) renderHeader() string {
	statusColor := theme.ColorWarning
	if m.status == StatusRunning {
		statusColor = theme.ColorSuccess
	}

	text := theme.HeaderText.Render(" docman") +
		theme.TextMutedStyle.Render(" │ Status: ") +
		theme.StatusStyle(m.status == StatusRunning).Render(m.status.String()) +
		theme.TextMutedStyle.Render(" │ ") +
		theme.TextBody.Render(m.rootPath)

	if m.isRepo && m.branch != "" {
		text += theme.TextMutedStyle.Render(" │ ") +
			theme.BranchStyle.Render(" "+m.branch)
	}

	return lipgloss.NewStyle().
		Border(theme.SoftBorder).
		BorderForeground(statusColor).
		Width(m.layout.TotalWidth - 2).
		Render(text)
}

func (m Model) editorTitle() string {
	if m.edit.Loaded() {
		title := filepath.Base(m.edit.Path())
		if m.focus == PanelEditor {
			title += " (editing)"
		}
		return title
	}
	return "EDITOR"
}

func (m Model) listHints() string {
	if m.focus != PanelFileList {
		return ""
	}
	return "↑↓:navigate  /:filter"
}

func (m Model) editorHints() string {
	if m.focus != PanelEditor {
		return ""
	}
	return "type to edit  ctrl+s:save"
}

// saveState persists the UI preferences. Best effort.
func (m Model) saveState() {
	_ = state.Save(state.State{
		ThemeIndex:  theme.CurrentThemeIndex(),
		ListPercent: m.listPercent,
	})
}
