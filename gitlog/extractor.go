// Package gitlog extracts pattern-matching line additions from git history.
package gitlog

import (
	"context"
	"strings"
	"time"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/relic"
)

// Extractor mines a repository's history for added lines containing a
// pattern. It asks the git runner for the commits in range known to touch
// the pattern (pickaxe search), then scans each commit's patch for added
// lines, attaching commit hash and date as provenance.
type Extractor struct {
	runner relic.GitRunner
}

// NewExtractor creates an Extractor backed by the given git runner.
func NewExtractor(runner relic.GitRunner) *Extractor {
	return &Extractor{runner: runner}
}

type commitRef struct {
	hash string
	date time.Time
}

// Extract returns every line added within the query's range whose content
// contains the query's pattern, oldest commit first. Commits with malformed
// dates or unparseable patches are skipped, as are binary and deleted
// files; a failing git invocation aborts the extraction.
func (e *Extractor) Extract(ctx context.Context, dir string, q relic.Query) ([]relic.Candidate, error) {
	raw, err := e.runner.Commits(ctx, dir, q)
	if err != nil {
		return nil, err
	}

	commits := parseCommits(raw)

	var out []relic.Candidate
	// git log lists newest first; walk oldest first so downstream
	// first-seen rules favor the earliest addition.
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		patch, err := e.runner.Patch(ctx, dir, c.hash)
		if err != nil {
			return nil, err
		}
		out = append(out, scanPatch(patch, c, q.Pattern)...)
	}
	return out, nil
}

// parseCommits reads "<hash>\t<YYYY-MM-DD>" lines. Lines that do not parse
// are dropped so one bad commit cannot abort the run.
func parseCommits(raw string) []commitRef {
	var commits []commitRef
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hash, dateStr, ok := strings.Cut(line, "\t")
		if !ok || hash == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		commits = append(commits, commitRef{hash: hash, date: date})
	}
	return commits
}

// scanPatch collects added lines containing pattern from one commit's patch.
// A patch that fails to parse yields no candidates.
func scanPatch(patch string, c commitRef, pattern string) []relic.Candidate {
	files, _, err := gitdiff.Parse(strings.NewReader(patch))
	if err != nil {
		return nil
	}

	var out []relic.Candidate
	for _, f := range files {
		if f.IsBinary || f.IsDelete || f.NewName == "" {
			continue
		}
		for _, frag := range f.TextFragments {
			for _, l := range frag.Lines {
				if l.Op != gitdiff.OpAdd {
					continue
				}
				content := strings.TrimSuffix(l.Line, "\n")
				if !strings.Contains(content, pattern) {
					continue
				}
				out = append(out, relic.Candidate{
					File:    f.NewName,
					Content: content,
					Date:    c.date,
					Hash:    c.hash,
				})
			}
		}
	}
	return out
}
