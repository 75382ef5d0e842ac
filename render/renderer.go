// Package render prints reconciled match blocks with surrounding context.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/relic"
)

// Renderer emits match blocks as styled terminal text: a provenance header
// per block, a line-number gutter, matched lines in bold, context lines
// dimmed. Blocks without readable file content degrade to a one-line
// provenance report.
type Renderer struct {
	file       lipgloss.Style
	date       lipgloss.Style
	hash       lipgloss.Style
	matched    lipgloss.Style
	context    lipgloss.Style
	lineNum    lipgloss.Style
	matchedNum lipgloss.Style
	note       lipgloss.Style
	highlight  relic.Highlighter // optional syntax coloring for context lines
}

// New creates a Renderer from the theme's styles. highlighter may be nil to
// disable syntax coloring.
func New(theme relic.Theme, highlighter relic.Highlighter) *Renderer {
	styles := theme.Styles()
	return &Renderer{
		file:       styleFor(styles.FileHeader),
		date:       styleFor(styles.CommitDate),
		hash:       styleFor(styles.CommitHash),
		matched:    styleFor(styles.Matched).Bold(true),
		context:    styleFor(styles.Context),
		lineNum:    styleFor(styles.LineNumber),
		matchedNum: styleFor(styles.MatchedNum),
		note:       styleFor(styles.Note),
		highlight:  highlighter,
	}
}

func styleFor(c relic.ColorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Foreground != "" {
		style = style.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		style = style.Background(lipgloss.Color(c.Background))
	}
	return style
}

// Render writes every block to w, separated by blank lines. lines carries
// current file content keyed by path, as produced by relic.LoadLines.
func (r *Renderer) Render(w io.Writer, blocks []relic.Block, lines map[string][]string) {
	for i, b := range blocks {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.renderBlock(w, b, lines[b.File])
	}
}

func (r *Renderer) renderBlock(w io.Writer, b relic.Block, fileLines []string) {
	if b.Start == 0 || b.End > len(fileLines) {
		for _, m := range b.Matches {
			r.renderProvenance(w, m)
		}
		return
	}

	head := b.Matches[0]
	fmt.Fprintf(w, "%s (added %s in %s)\n",
		r.file.Render(b.File),
		r.date.Render(head.Date.Format("2006-01-02")),
		r.hash.Render(head.ShortHash()))

	matchedLine := make(map[int]bool, len(b.Matches))
	for _, m := range b.Matches {
		matchedLine[m.Line] = true
	}

	for n := b.Start; n <= b.End; n++ {
		content := fileLines[n-1]
		if matchedLine[n] {
			fmt.Fprintf(w, "%s: %s\n",
				r.matchedNum.Render(fmt.Sprintf("%4d", n)),
				r.matched.Render(content))
			continue
		}
		if r.highlight != nil {
			fmt.Fprintf(w, "%s: %s\n",
				r.lineNum.Render(fmt.Sprintf("%4d", n)),
				r.highlight.Highlight(b.File, content))
			continue
		}
		fmt.Fprintf(w, "%s\n", r.context.Render(fmt.Sprintf("%4d: %s", n, content)))
	}

	// Additional matches folded into this window keep their own
	// provenance as one-line notes instead of repeating context.
	for _, m := range b.Matches[1:] {
		fmt.Fprintf(w, "%s\n", r.note.Render(fmt.Sprintf("      also line %d: %s (added %s in %s)",
			m.Line, strings.TrimSpace(m.Content), m.Date.Format("2006-01-02"), m.ShortHash())))
	}
}

// renderProvenance is the fallback for matches whose file content could not
// be read: file, line, trimmed content, and commit provenance on one line.
func (r *Renderer) renderProvenance(w io.Writer, m relic.Match) {
	fmt.Fprintf(w, "%s:%s: %s (added %s in %s)\n",
		r.file.Render(m.File),
		r.matchedNum.Render(fmt.Sprintf("%d", m.Line)),
		strings.TrimSpace(m.Content),
		r.date.Render(m.Date.Format("2006-01-02")),
		r.hash.Render(m.ShortHash()))
}
