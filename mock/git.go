package mock

import (
	"context"

	"github.com/fwojciec/relic"
)

// Compile-time interface verification.
var _ relic.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of relic.GitRunner.
type GitRunner struct {
	CommitsFn func(ctx context.Context, dir string, q relic.Query) (string, error)
	PatchFn   func(ctx context.Context, dir string, hash string) (string, error)
}

func (g *GitRunner) Commits(ctx context.Context, dir string, q relic.Query) (string, error) {
	return g.CommitsFn(ctx, dir, q)
}

func (g *GitRunner) Patch(ctx context.Context, dir string, hash string) (string, error) {
	return g.PatchFn(ctx, dir, hash)
}
