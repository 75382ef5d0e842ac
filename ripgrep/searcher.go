// Package ripgrep runs live working-tree searches via the rg binary.
package ripgrep

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/fwojciec/relic"
)

// Compile-time interface verification.
var _ relic.Searcher = (*Searcher)(nil)

// Searcher shells out to ripgrep and returns its formatted output verbatim.
type Searcher struct{}

// NewSearcher creates a new ripgrep searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Search runs rg with context lines, line numbers and columns. Any
// unsuccessful rg exit is returned as an empty result, not an error; only a
// missing rg binary fails.
func (s *Searcher) Search(ctx context.Context, q relic.SearchQuery) (string, error) {
	color := "never"
	if q.Color {
		color = "always"
	}
	args := []string{
		q.Pattern,
		fmt.Sprintf("-C%d", q.Context),
		"--color=" + color,
		"--line-number",
		"--column",
	}
	if q.Glob != "" {
		args = append(args, "-g", q.Glob)
	}
	args = append(args, q.Dir)

	cmd := exec.CommandContext(ctx, "rg", args...)
	output, err := cmd.Output()
	if err != nil {
		// Any non-zero exit is an empty result: rg exits 1 on no
		// matches and 2 on search errors such as a bad pattern or an
		// unreadable path. Only failing to start rg at all is fatal.
		if _, ok := err.(*exec.ExitError); ok {
			return "", nil
		}
		return "", fmt.Errorf("failed to execute ripgrep (is 'rg' installed?): %w", err)
	}
	return string(output), nil
}
