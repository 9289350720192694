package git

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"docman/internal/log"
)

// ShellRunner implements Runner by shelling out to the git binary.
type ShellRunner struct {
	workDir string
	mu      sync.Mutex // serializes git invocations
}

// NewShellRunner creates a runner operating in workDir.
func NewShellRunner(workDir string) *ShellRunner {
	return &ShellRunner{workDir: workDir}
}

// IsRepo checks whether workDir is inside a git repository.
func (r *ShellRunner) IsRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = r.workDir
	return cmd.Run() == nil
}

// StatusLines runs `git status --short` and returns stdout split into
// lines, order preserved. Stderr and the exit code are ignored; if the
// command cannot be spawned the result is empty.
func (r *ShellRunner) StatusLines(ctx context.Context) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := exec.CommandContext(ctx, "git", "--no-optional-locks", "status", "--short")
	cmd.Dir = r.workDir
	out, err := cmd.Output()
	if err != nil {
		log.Warnf("git: status failed: %v", err)
		return nil
	}

	raw := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Branch returns the current branch name. A detached HEAD is reported as
// the short commit hash in parentheses.
func (r *ShellRunner) Branch(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := exec.CommandContext(ctx, "git", "--no-optional-locks", "branch", "--show-current")
	cmd.Dir = r.workDir
	out, err := cmd.Output()
	if err == nil && strings.TrimSpace(string(out)) != "" {
		return strings.TrimSpace(string(out)), nil
	}

	cmd = exec.CommandContext(ctx, "git", "--no-optional-locks", "rev-parse", "--short", "HEAD")
	cmd.Dir = r.workDir
	out, err = cmd.Output()
	if err != nil {
		return "", err
	}
	return "(" + strings.TrimSpace(string(out)) + ")", nil
}
