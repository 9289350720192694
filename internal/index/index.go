package index

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"docman/internal/log"
)

// MaxDepth is how many directory levels below the root are scanned.
const MaxDepth = 3

// DefaultPatterns returns the compiled allow-list for documentation files.
// Matching is against the base name and is case-sensitive.
func DefaultPatterns() []glob.Glob {
	return MustCompile("*.md", "*.mdx")
}

// MustCompile compiles a set of glob patterns, panicking on invalid input.
// Intended for package-level allow-lists known at compile time.
func MustCompile(patterns ...string) []glob.Glob {
	gs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		gs = append(gs, glob.MustCompile(p))
	}
	return gs
}

// Match reports whether the base name of path matches any pattern.
func Match(patterns []glob.Glob, path string) bool {
	name := filepath.Base(path)
	for _, g := range patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Scan walks the tree rooted at root up to maxDepth levels and returns the
// regular files whose base name matches one of the patterns, in traversal
// order. Unreadable entries are skipped; an unreadable root yields an empty
// listing rather than an error.
func Scan(root string, maxDepth int, patterns []glob.Glob) []string {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable entries, keep walking siblings.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if depthOf(rel) >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if Match(patterns, path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		log.Warnf("index: scan of %s aborted: %v", root, err)
		return nil
	}

	return files
}

// Subdirs returns the directories under root within maxDepth, root included.
// Used to register file-watcher paths alongside a scan.
func Subdirs(root string, maxDepth int) []string {
	dirs := []string{root}

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}
		if depthOf(rel) >= maxDepth {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})

	return dirs
}

// depthOf counts the directory levels in a relative path ("a/b" = 2).
func depthOf(rel string) int {
	if rel == "." || rel == "" {
		return 0
	}
	return strings.Count(rel, string(os.PathSeparator)) + 1
}
