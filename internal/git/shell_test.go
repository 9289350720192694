package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "Test"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		require.NoError(t, cmd.Run(), "git %v", args)
	}
	return dir
}

func writeUntracked(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content\n"), 0o644))
}

func TestShellRunnerIsRepo(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not installed")
	}

	t.Run("true inside a repository", func(t *testing.T) {
		r := NewShellRunner(initRepo(t))
		assert.True(t, r.IsRepo())
	})

	t.Run("false outside a repository", func(t *testing.T) {
		r := NewShellRunner(t.TempDir())
		assert.False(t, r.IsRepo())
	})
}

func TestShellRunnerStatusLines(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not installed")
	}

	t.Run("clean repo yields no lines", func(t *testing.T) {
		r := NewShellRunner(initRepo(t))
		assert.Empty(t, r.StatusLines(context.Background()))
	})

	t.Run("untracked file appears as a line", func(t *testing.T) {
		dir := initRepo(t)
		writeUntracked(t, dir, "notes.md")

		r := NewShellRunner(dir)
		lines := r.StatusLines(context.Background())

		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "?? notes.md")
	})

	t.Run("non-repo yields no lines and no error", func(t *testing.T) {
		r := NewShellRunner(t.TempDir())
		assert.Empty(t, r.StatusLines(context.Background()))
	})

	t.Run("cancelled context yields no lines", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := NewShellRunner(initRepo(t))
		assert.Empty(t, r.StatusLines(ctx))
	})
}
