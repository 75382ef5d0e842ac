// Package relic provides domain types for locating marker comments (e.g.
// "TODO") in a source tree, either in the current working copy or in
// version-control history.
package relic

import (
	"context"
	"time"
)

// Candidate is a single line added by a historical commit whose content
// contains the search pattern. Candidates exist only for the duration of one
// extraction pass; they carry the provenance needed to report where the line
// came from.
type Candidate struct {
	File    string    // path relative to the repository root
	Content string    // raw line content as it appeared in the diff
	Date    time.Time // commit date, day precision
	Hash    string    // full commit hash
}

// Match is a candidate located in the present working tree.
type Match struct {
	File    string
	Line    int    // 1-based line number in the current file
	Content string // literal current line content
	Date    time.Time
	Hash    string
}

// ShortHash returns the first 8 characters of the commit hash, or the whole
// hash if it is shorter.
func (m Match) ShortHash() string {
	if len(m.Hash) > 8 {
		return m.Hash[:8]
	}
	return m.Hash
}

// Block is a merged rendering unit: one context window in one file covering
// one or more matches. Matches[0] drove the window and provides the header
// provenance. A Block with Start == 0 has no readable file content behind it
// and degrades to provenance-only output.
type Block struct {
	File    string
	Start   int // inclusive, 1-based
	End     int // inclusive
	Matches []Match
}

// Query bounds a history search. Pattern is matched as a literal substring
// against added lines. Exactly one of Since or From/To is set: Since
// restricts to commits on or after a YYYY-MM-DD date, From/To to the
// from..to ref range.
type Query struct {
	Pattern string
	Since   string
	From    string
	To      string
}

// SearchQuery describes a live text search over the working tree.
type SearchQuery struct {
	Pattern string
	Context int    // surrounding lines to include
	Glob    string // optional file filter, e.g. "*.go"
	Dir     string
	Color   bool
}

// GitRunner provides access to git operations for mining history.
type GitRunner interface {
	// Commits lists commits in range whose diffs add or remove the pattern,
	// newest first. Each non-empty line of the returned text is
	// "<hash>\t<YYYY-MM-DD>".
	Commits(ctx context.Context, dir string, q Query) (string, error)
	// Patch returns the patch text for a single commit, without commit
	// message headers.
	Patch(ctx context.Context, dir string, hash string) (string, error)
}

// Searcher runs a text search over the current files and returns the
// engine's formatted output verbatim. An empty result is not an error.
type Searcher interface {
	Search(ctx context.Context, q SearchQuery) (string, error)
}

// Highlighter applies syntax coloring to a single source line. Lines in
// unrecognized languages are returned unchanged.
type Highlighter interface {
	Highlight(path, line string) string
}
