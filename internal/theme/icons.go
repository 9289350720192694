package theme

import "path/filepath"

// File icons (Nerd Font glyphs with plain fallbacks handled by the map).
const (
	IconFile     = "󰈙"
	IconMarkdown = "󰍔"
)

var extIcons = map[string]string{
	".md":  IconMarkdown,
	".mdx": IconMarkdown,
}

// FileIcon returns the icon for a file path.
func FileIcon(path string) string {
	if icon, ok := extIcons[filepath.Ext(path)]; ok {
		return icon
	}
	return IconFile
}
