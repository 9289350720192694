package git

import "context"

// Runner defines the git operations the application needs.
type Runner interface {
	// StatusLines returns the porcelain short-status output, one line per
	// entry, in command output order. A spawn failure yields an empty
	// slice, never an error.
	StatusLines(ctx context.Context) []string

	// Branch returns the current branch name, or "(<sha>)" when detached.
	Branch(ctx context.Context) (string, error)

	// IsRepo reports whether the working directory is inside a repository.
	IsRepo() bool
}
