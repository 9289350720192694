package app

import "github.com/fsnotify/fsnotify"

// PanelID identifies which pane has focus.
type PanelID int

const (
	PanelFileList PanelID = iota
	PanelEditor
	PanelLog

	panelCount
)

// Next returns the pane after p in the fixed cycle
// file list → editor → log → file list.
func (p PanelID) Next() PanelID {
	return (p + 1) % panelCount
}

// String returns the pane name for the status areas and debugging.
func (p PanelID) String() string {
	switch p {
	case PanelFileList:
		return "FileList"
	case PanelEditor:
		return "Editor"
	case PanelLog:
		return "Log"
	default:
		return "Unknown"
	}
}

// Status is the preview-server flag shown in the header. It is cosmetic:
// the run action flips it and nothing else reads it.
type Status int

const (
	StatusOffline Status = iota
	StatusRunning
)

// String returns the header token for the status flag.
func (s Status) String() string {
	if s == StatusRunning {
		return "RUNNING"
	}
	return "OFFLINE"
}

// FileLoadedMsg carries the result of loading a document.
type FileLoadedMsg struct {
	Path    string
	Content string
	Err     error
}

// BranchMsg carries a refreshed branch name, empty outside a repository.
type BranchMsg struct {
	Branch string
	IsRepo bool
}

// FileChangeMsg is sent when the file system changes under the root.
type FileChangeMsg struct {
	Path string
	Op   fsnotify.Op
}

// branchTickMsg schedules the periodic branch refresh.
type branchTickMsg struct{}

// rescanDebounceMsg fires after a burst of file changes settles.
type rescanDebounceMsg struct{}
