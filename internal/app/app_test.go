package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner satisfies git.Runner without spawning processes.
type fakeRunner struct {
	lines  []string
	branch string
	repo   bool
}

func (f *fakeRunner) StatusLines(context.Context) []string { return f.lines }
func (f *fakeRunner) Branch(context.Context) (string, error) {
	return f.branch, nil
}
func (f *fakeRunner) IsRepo() bool { return f.repo }

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newTestModel builds a ready model over a temp docs tree.
func newTestModel(t *testing.T, runner *fakeRunner, docs ...string) (Model, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	for _, name := range docs {
		writeDoc(t, dir, name, "# "+name+"\n")
	}

	m := New(dir, runner)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), dir
}

func TestNew(t *testing.T) {
	m, _ := newTestModel(t, &fakeRunner{}, "a.md")

	assert.Equal(t, PanelFileList, m.Focus())
	assert.Equal(t, StatusOffline, m.StatusFlag())
	assert.Equal(t, []string{"[System] Manager started."}, m.logView.Entries())
	assert.Equal(t, []string{"a.md"}, relPaths(m))
}

func relPaths(m Model) []string {
	var out []string
	for _, p := range m.fileList.Entries() {
		out = append(out, filepath.Base(p))
	}
	return out
}

func TestPanelIDNext(t *testing.T) {
	assert.Equal(t, PanelEditor, PanelFileList.Next())
	assert.Equal(t, PanelLog, PanelEditor.Next())
	assert.Equal(t, PanelFileList, PanelLog.Next())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OFFLINE", StatusOffline.String())
	assert.Equal(t, "RUNNING", StatusRunning.String())
}

func TestFocusCycle(t *testing.T) {
	m, _ := newTestModel(t, &fakeRunner{}, "a.md")

	order := []PanelID{PanelEditor, PanelLog, PanelFileList}
	for _, want := range order {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
		assert.Equal(t, want, m.Focus())
	}
}

func TestGitStatusAction(t *testing.T) {
	t.Run("appends header then each line", func(t *testing.T) {
		runner := &fakeRunner{lines: []string{" M a.md", "?? b.md"}, repo: true}
		m, _ := newTestModel(t, runner, "a.md")

		updated, _ := m.Update(keyPress('g'))
		entries := updated.(Model).logView.Entries()

		assert.Equal(t, []string{
			"[System] Manager started.",
			"-- Git Status --",
			" M a.md",
			"?? b.md",
		}, entries)
	})

	t.Run("clean tree appends exactly one header and no lines", func(t *testing.T) {
		m, _ := newTestModel(t, &fakeRunner{repo: true}, "a.md")

		updated, _ := m.Update(keyPress('g'))
		entries := updated.(Model).logView.Entries()

		assert.Equal(t, "-- Git Status --", entries[len(entries)-1])
	})

	t.Run("g types into a focused editor instead", func(t *testing.T) {
		m, _ := newTestModel(t, &fakeRunner{repo: true}, "a.md")
		m = loadSelected(t, m)
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab}) // focus editor
		m = updated.(Model)

		before := m.logView.Len()
		updated, _ = m.Update(keyPress('g'))
		m = updated.(Model)

		assert.Equal(t, before, m.logView.Len())
		assert.Contains(t, m.edit.Value(), "g")
	})
}

func TestRunAction(t *testing.T) {
	m, _ := newTestModel(t, &fakeRunner{}, "a.md")

	updated, _ := m.Update(keyPress('r'))
	m = updated.(Model)

	assert.Equal(t, StatusRunning, m.StatusFlag())
	assert.Contains(t, m.logView.Entries(), "[Preview] Site server started on port 3000")

	// A second press logs again; the flag stays set.
	updated, _ = m.Update(keyPress('r'))
	m = updated.(Model)

	assert.Equal(t, StatusRunning, m.StatusFlag())
	count := 0
	for _, e := range m.logView.Entries() {
		if e == "[Preview] Site server started on port 3000" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

// loadSelected drives the selection-load round trip synchronously.
func loadSelected(t *testing.T, m Model) Model {
	t.Helper()
	path, ok := m.fileList.Selected()
	require.True(t, ok)

	cmd := loadFileCmd(path)
	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func TestFileLoading(t *testing.T) {
	t.Run("loaded file fills the editor and logs", func(t *testing.T) {
		m, dir := newTestModel(t, &fakeRunner{}, "a.md")

		m = loadSelected(t, m)

		assert.Equal(t, "# a.md\n", m.edit.Value())
		assert.Contains(t, m.logView.Entries(), "[File] Loaded "+filepath.Join(dir, "a.md"))
	})

	t.Run("navigation emits a selection that triggers a load", func(t *testing.T) {
		m, dir := newTestModel(t, &fakeRunner{}, "a.md", "b.md")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
		require.NotNil(t, cmd)

		// The component emits the selection; the app answers with a load.
		updated, loadCmd := m.Update(cmd())
		m = updated.(Model)
		require.NotNil(t, loadCmd)

		updated, _ = m.Update(loadCmd())
		m = updated.(Model)

		assert.Equal(t, filepath.Join(dir, "b.md"), m.edit.Path())
		assert.Equal(t, "# b.md\n", m.edit.Value())
	})

	t.Run("failed load keeps the previous buffer", func(t *testing.T) {
		m, _ := newTestModel(t, &fakeRunner{}, "a.md")
		m = loadSelected(t, m)

		updated, _ := m.Update(FileLoadedMsg{Path: "/gone.md", Err: os.ErrNotExist})
		m = updated.(Model)

		assert.Equal(t, "# a.md\n", m.edit.Value())
		last := m.logView.Entries()[m.logView.Len()-1]
		assert.Contains(t, last, "[File] Load failed")
	})
}

func TestSaveAction(t *testing.T) {
	t.Run("writes the buffer back to disk", func(t *testing.T) {
		m, dir := newTestModel(t, &fakeRunner{}, "a.md")
		m = loadSelected(t, m)

		// Type into the focused editor.
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
		updated, _ = m.Update(keyPress('x'))
		m = updated.(Model)

		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		m = updated.(Model)

		data, err := os.ReadFile(filepath.Join(dir, "a.md"))
		require.NoError(t, err)
		assert.Equal(t, m.edit.Value(), string(data))
		assert.Contains(t, m.logView.Entries(), "[File] Saved "+filepath.Join(dir, "a.md"))
	})

	t.Run("save without a loaded file is a no-op", func(t *testing.T) {
		m, _ := newTestModel(t, &fakeRunner{})

		before := m.logView.Len()
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		m = updated.(Model)

		assert.Equal(t, before, m.logView.Len())
	})

	t.Run("failed save is logged, not fatal", func(t *testing.T) {
		m, dir := newTestModel(t, &fakeRunner{}, "a.md")
		m = loadSelected(t, m)
		require.NoError(t, os.RemoveAll(dir))

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		m = updated.(Model)

		last := m.logView.Entries()[m.logView.Len()-1]
		assert.Contains(t, last, "[File] Save failed")
	})
}

func TestQuit(t *testing.T) {
	t.Run("q quits outside the editor", func(t *testing.T) {
		m, _ := newTestModel(t, &fakeRunner{}, "a.md")

		_, cmd := m.Update(keyPress('q'))

		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})

	t.Run("q types into a focused editor", func(t *testing.T) {
		m, _ := newTestModel(t, &fakeRunner{}, "a.md")
		m = loadSelected(t, m)
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)

		updated, cmd := m.Update(keyPress('q'))
		m = updated.(Model)

		if cmd != nil {
			assert.NotEqual(t, tea.Quit(), cmd())
		}
		assert.Contains(t, m.edit.Value(), "q")
	})

	t.Run("ctrl+q quits even while editing", func(t *testing.T) {
		m, _ := newTestModel(t, &fakeRunner{}, "a.md")
		m = loadSelected(t, m)
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}

func TestRescan(t *testing.T) {
	t.Run("picks up new files", func(t *testing.T) {
		m, dir := newTestModel(t, &fakeRunner{}, "a.md")
		writeDoc(t, dir, "b.md", "new\n")

		updated, _ := m.Update(rescanDebounceMsg{})
		m = updated.(Model)

		assert.Equal(t, []string{"a.md", "b.md"}, relPaths(m))
	})

	t.Run("does not reload the editor buffer", func(t *testing.T) {
		m, dir := newTestModel(t, &fakeRunner{}, "a.md")
		m = loadSelected(t, m)
		writeDoc(t, dir, "a.md", "changed on disk\n")

		updated, _ := m.Update(rescanDebounceMsg{})
		m = updated.(Model)

		assert.Equal(t, "# a.md\n", m.edit.Value())
	})

	t.Run("selection survives a rescan", func(t *testing.T) {
		m, dir := newTestModel(t, &fakeRunner{}, "a.md", "c.md")
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
		writeDoc(t, dir, "b.md", "between\n")

		updated, _ = m.Update(rescanDebounceMsg{})
		m = updated.(Model)

		path, ok := m.fileList.Selected()
		require.True(t, ok)
		assert.Equal(t, "c.md", filepath.Base(path))
	})
}

func TestBranchMsg(t *testing.T) {
	m, _ := newTestModel(t, &fakeRunner{}, "a.md")

	updated, _ := m.Update(BranchMsg{Branch: "main", IsRepo: true})
	m = updated.(Model)

	assert.Contains(t, m.View(), "main")
}

func TestThemeCycleKey(t *testing.T) {
	m, _ := newTestModel(t, &fakeRunner{}, "a.md")

	// Must not panic or change focus.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}, Alt: true})
	m = updated.(Model)

	assert.Equal(t, PanelFileList, m.Focus())
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, &fakeRunner{}, "a.md")

	view := m.View()

	assert.Contains(t, view, "docman")
	assert.Contains(t, view, "OFFLINE")
	assert.Contains(t, view, "FILES")
	assert.Contains(t, view, "CONSOLE")
	assert.Contains(t, view, "a.md")
}

func TestViewBeforeReady(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := New(t.TempDir(), &fakeRunner{})

	assert.Equal(t, "Initializing...", m.View())
}
