package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/relic"
	"github.com/fwojciec/relic/gitlog"
	"github.com/fwojciec/relic/render"
)

// App encapsulates one invocation of the search pipeline for testing.
type App struct {
	Git      relic.GitRunner
	Searcher relic.Searcher
	Renderer *render.Renderer
	Out      io.Writer

	Dir     string // repository / search root
	Pattern string
	Context int // context lines around each match
	Workers int // matcher pool size; 0 means one per CPU
}

// RunCurrent searches the working tree via the external search engine and
// prints its formatted output verbatim.
func (a *App) RunCurrent(ctx context.Context, glob string, color bool) error {
	fmt.Fprintf(a.Out, "Searching for '%s' in current files...\n\n", a.Pattern)

	out, err := a.Searcher.Search(ctx, relic.SearchQuery{
		Pattern: a.Pattern,
		Context: a.Context,
		Glob:    glob,
		Dir:     a.Dir,
		Color:   color,
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "" {
		fmt.Fprintln(a.Out, "No matches found.")
		return nil
	}
	fmt.Fprint(a.Out, out)
	return nil
}

// RunSince mines history for pattern additions in commits since the given
// YYYY-MM-DD date. A malformed date is a fatal input error reported before
// any pipeline stage runs.
func (a *App) RunSince(ctx context.Context, date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD (e.g. 2025-12-01)", date)
	}

	fmt.Fprintf(a.Out, "Searching for '%s' in lines added since %s...\n\n", a.Pattern, date)

	q := relic.Query{Pattern: a.Pattern, Since: date}
	return a.runHistory(ctx, q, relic.ByDate, "since "+date)
}

// RunRange mines history for pattern additions in the from..to ref range.
func (a *App) RunRange(ctx context.Context, from, to string) error {
	fmt.Fprintf(a.Out, "Searching for '%s' in lines added in %s..%s...\n\n", a.Pattern, from, to)

	q := relic.Query{Pattern: a.Pattern, From: from, To: to}
	return a.runHistory(ctx, q, relic.ByFile, fmt.Sprintf("in %s..%s", from, to))
}

// runHistory is the extract → resolve → reconcile → render pipeline shared
// by the history modes. scope names the range in user-facing messages.
func (a *App) runHistory(ctx context.Context, q relic.Query, mode relic.GroupMode, scope string) error {
	extractor := gitlog.NewExtractor(a.Git)
	candidates, err := extractor.Extract(ctx, a.Dir, q)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintf(a.Out, "No '%s' additions found %s.\n", a.Pattern, scope)
		return nil
	}

	matches, err := relic.ResolveAll(ctx, a.Dir, a.Pattern, candidates, a.Workers)
	if err != nil {
		return err
	}
	matches = relic.Dedupe(matches)
	if len(matches) == 0 {
		fmt.Fprintf(a.Out, "No '%s' found in lines added %s (lines may have been removed).\n", a.Pattern, scope)
		return nil
	}

	fmt.Fprintf(a.Out, "Found %d match(es):\n\n", len(matches))

	lines := relic.LoadLines(a.Dir, matches)
	blocks := relic.Reconcile(matches, a.Context, mode, lines)
	a.Renderer.Render(a.Out, blocks, lines)
	return nil
}
