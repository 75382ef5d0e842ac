// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/fwojciec/relic"
)

// Compile-time interface verification.
var _ relic.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Commits lists commits in the query's range whose diffs add or remove the
// pattern, one "<hash>\t<date>" per line, newest first. The pickaxe search
// (-S) keeps this cheap on large histories: only commits that change the
// number of pattern occurrences are listed.
func (r *Runner) Commits(ctx context.Context, dir string, q relic.Query) (string, error) {
	args := []string{
		"-C", dir, "log",
		"--format=%H%x09%ad", "--date=short",
		"--diff-filter=AM",
		"-S", q.Pattern,
	}
	if q.Since != "" {
		args = append(args, "--since="+q.Since)
	} else {
		args = append(args, q.From+".."+q.To)
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git log failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git log failed: %w", err)
	}
	return string(output), nil
}

// Patch returns the patch text for a single commit, without message headers.
func (r *Runner) Patch(ctx context.Context, dir string, hash string) (string, error) {
	args := []string{"-C", dir, "show", "--format=", hash}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git show failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git show failed: %w", err)
	}
	return string(output), nil
}
