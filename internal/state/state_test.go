package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, 0, s.ThemeIndex)
	assert.Equal(t, 0, s.ListPercent)
}

func TestLoadSave(t *testing.T) {
	t.Run("load without a file returns defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		assert.Equal(t, DefaultState(), Load())
	})

	t.Run("round trip preserves preferences", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		require.NoError(t, Save(State{ThemeIndex: 2, ListPercent: 45}))

		got := Load()
		assert.Equal(t, 2, got.ThemeIndex)
		assert.Equal(t, 45, got.ListPercent)
	})

	t.Run("corrupt file returns defaults", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		dir := filepath.Join(home, configDirName, appDirName)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0o644))

		assert.Equal(t, DefaultState(), Load())
	})

	t.Run("save creates the config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		require.NoError(t, Save(DefaultState()))

		_, err := os.Stat(filepath.Join(home, configDirName, appDirName, stateFileName))
		assert.NoError(t, err)
	})
}
