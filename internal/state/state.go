package state

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDirName = ".config"
	appDirName    = "docman"
	stateFileName = "state.json"
)

// State represents the persisted UI preferences. Document content is never
// stored here; only how the interface was arranged.
type State struct {
	// ThemeIndex is the index of the selected theme
	ThemeIndex int `json:"theme_index"`
	// ListPercent is the width percentage of the file list pane (15-60)
	ListPercent int `json:"list_percent,omitempty"`
}

// DefaultState returns the default state for first run.
func DefaultState() State {
	return State{
		ThemeIndex: 0,
	}
}

// configDir returns the path to the config directory (~/.config/docman).
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, appDirName), nil
}

// statePath returns the global path to the state file.
func statePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

// Load reads the persisted preferences. Returns defaults if the file does
// not exist or cannot be parsed.
func Load() State {
	path, err := statePath()
	if err != nil {
		return DefaultState()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultState()
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultState()
	}

	return s
}

// Save writes the preferences. Best effort; callers may ignore the error.
func Save(s State) error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := statePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
