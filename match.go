package relic

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Resolve reports where a candidate line currently lives in the working tree
// under dir. The candidate's content, trimmed of surrounding whitespace,
// matches a current line (also trimmed) either exactly or by substring
// containment, which tolerates minor edits such as changed trailing
// punctuation. The first line satisfying the policy that also contains the
// search pattern wins. A missing or unreadable file resolves to no match.
func Resolve(dir string, c Candidate, pattern string) (Match, bool) {
	data, err := os.ReadFile(filepath.Join(dir, c.File))
	if err != nil {
		return Match{}, false
	}

	want := strings.TrimSpace(c.Content)
	for i, line := range splitLines(string(data)) {
		if !strings.Contains(line, pattern) {
			continue
		}
		got := strings.TrimSpace(line)
		if got == want || strings.Contains(got, want) {
			return Match{
				File:    c.File,
				Line:    i + 1,
				Content: line,
				Date:    c.Date,
				Hash:    c.Hash,
			}, true
		}
	}
	return Match{}, false
}

// ResolveAll resolves candidates against the working tree using a bounded
// worker pool. Each resolution reads one file and shares no mutable state,
// so candidates are processed concurrently; results preserve the input
// order, with unresolved candidates dropped. workers <= 0 selects a pool
// sized to the available CPUs.
func ResolveAll(ctx context.Context, dir, pattern string, candidates []Candidate, workers int) ([]Match, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Match, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if m, ok := Resolve(dir, c, pattern); ok {
				results[i] = &m
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(candidates))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}
	return matches, nil
}

// splitLines splits file content into lines without the trailing empty
// element produced by a final newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
