package mock

import (
	"context"

	"github.com/fwojciec/relic"
)

// Compile-time interface verification.
var _ relic.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of relic.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, q relic.SearchQuery) (string, error)
}

func (s *Searcher) Search(ctx context.Context, q relic.SearchQuery) (string, error) {
	return s.SearchFn(ctx, q)
}
