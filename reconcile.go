package relic

import (
	"os"
	"path/filepath"
	"sort"
)

// GroupMode selects how reconciled matches are ordered for display.
type GroupMode int

const (
	// ByDate orders matches by commit date ascending, regardless of file.
	ByDate GroupMode = iota
	// ByFile groups matches per file (first-seen file order) and orders
	// them by current line number within each file.
	ByFile
)

// Dedupe removes matches sharing (file, line), keeping the first seen.
func Dedupe(matches []Match) []Match {
	type key struct {
		file string
		line int
	}
	seen := make(map[key]bool, len(matches))
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		k := key{m.File, m.Line}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}

// LoadLines reads the current content of each distinct file among matches,
// keyed by file path relative to dir. Unreadable files are omitted; their
// matches degrade to provenance-only blocks downstream.
func LoadLines(dir string, matches []Match) map[string][]string {
	lines := make(map[string][]string)
	for _, m := range matches {
		if _, ok := lines[m.File]; ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, m.File))
		if err != nil {
			continue
		}
		lines[m.File] = splitLines(string(data))
	}
	return lines
}

// Reconcile deduplicates matches by (file, line), orders them per mode, and
// folds them into rendering blocks. Each block's window spans the matched
// line ± contextLines, clamped to [1, file length]. Windows in the same file
// that overlap or touch are merged into a single block so no line is printed
// twice; every underlying match is retained for per-line highlighting.
// Matches whose file is absent from lines produce provenance-only blocks
// (Start == 0). The result is deterministic for a given input.
func Reconcile(matches []Match, contextLines int, mode GroupMode, lines map[string][]string) []Block {
	matches = Dedupe(matches)
	if mode == ByFile {
		return reconcileByFile(matches, contextLines, lines)
	}
	return reconcileByDate(matches, contextLines, lines)
}

func reconcileByDate(matches []Match, contextLines int, lines map[string][]string) []Block {
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var blocks []Block
	for _, m := range sorted {
		fileLines, ok := lines[m.File]
		if !ok || m.Line > len(fileLines) {
			blocks = append(blocks, Block{File: m.File, Matches: []Match{m}})
			continue
		}
		start, end := window(m.Line, contextLines, len(fileLines))
		blocks = foldWindow(blocks, m, start, end)
	}
	return blocks
}

// foldWindow adds a match and its window to the block list. A window that
// overlaps or touches an existing block for the same file is merged into it
// (union of line ranges) so no line is printed twice; the widened block then
// absorbs any later blocks it now reaches. Block order, and the provenance
// of each block's first match, are preserved.
func foldWindow(blocks []Block, m Match, start, end int) []Block {
	idx := -1
	for i := range blocks {
		if touches(blocks[i], m.File, start, end) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return append(blocks, Block{File: m.File, Start: start, End: end, Matches: []Match{m}})
	}

	target := &blocks[idx]
	if start < target.Start {
		target.Start = start
	}
	if end > target.End {
		target.End = end
	}
	target.Matches = append(target.Matches, m)

	out := blocks[:idx+1]
	for _, b := range blocks[idx+1:] {
		if touches(b, m.File, target.Start, target.End) {
			if b.Start < target.Start {
				target.Start = b.Start
			}
			if b.End > target.End {
				target.End = b.End
			}
			target.Matches = append(target.Matches, b.Matches...)
			continue
		}
		out = append(out, b)
	}
	return out
}

// touches reports whether the block belongs to file and its window overlaps
// or is adjacent to [start, end]. Provenance-only blocks (Start == 0) never
// touch anything.
func touches(b Block, file string, start, end int) bool {
	return b.File == file && b.Start != 0 && b.Start <= end+1 && start <= b.End+1
}

func reconcileByFile(matches []Match, contextLines int, lines map[string][]string) []Block {
	var order []string
	byFile := make(map[string][]Match)
	for _, m := range matches {
		if _, ok := byFile[m.File]; !ok {
			order = append(order, m.File)
		}
		byFile[m.File] = append(byFile[m.File], m)
	}

	var blocks []Block
	for _, file := range order {
		ms := byFile[file]
		sort.SliceStable(ms, func(i, j int) bool { return ms[i].Line < ms[j].Line })

		fileLines, ok := lines[file]
		if !ok || len(fileLines) == 0 {
			for _, m := range ms {
				blocks = append(blocks, Block{File: file, Matches: []Match{m}})
			}
			continue
		}

		var cur *Block
		for _, m := range ms {
			if m.Line > len(fileLines) {
				blocks = append(blocks, Block{File: file, Matches: []Match{m}})
				cur = nil
				continue
			}
			start, end := window(m.Line, contextLines, len(fileLines))
			// Merge windows that overlap or are adjacent.
			if cur != nil && start <= cur.End+1 {
				if end > cur.End {
					cur.End = end
				}
				cur.Matches = append(cur.Matches, m)
				continue
			}
			blocks = append(blocks, Block{File: file, Start: start, End: end, Matches: []Match{m}})
			cur = &blocks[len(blocks)-1]
		}
	}
	return blocks
}

func window(line, contextLines, fileLen int) (start, end int) {
	start = line - contextLines
	if start < 1 {
		start = 1
	}
	end = line + contextLines
	if end > fileLen {
		end = fileLen
	}
	return start, end
}
