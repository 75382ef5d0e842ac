// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"path/filepath"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/relic"
)

// Compile-time interface verification.
var _ relic.Highlighter = (*Highlighter)(nil)

// Highlighter colors single source lines using chroma lexers, with the
// language detected from the file path. Lines in unrecognized languages are
// returned unchanged.
type Highlighter struct{}

// NewHighlighter creates a new chroma-based highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight tokenizes line as source code in the language matching path and
// returns it with per-token foreground colors applied. Tokenization
// failures degrade to the unmodified line.
func (h *Highlighter) Highlight(path, line string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return line
	}
	// Coalesce for better performance with consecutive tokens of the same type.
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var sb strings.Builder
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		text := strings.TrimSuffix(token.Value, "\n")
		if color := tokenColor(token.Type); color != "" {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text))
		} else {
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// tokenColor maps chroma token types to foreground colors. Token types
// without a mapping keep the terminal default.
func tokenColor(tt chromalib.TokenType) string {
	switch {
	case tt == chromalib.KeywordType:
		return "#f9e2af" // Yellow
	case tt.InCategory(chromalib.Keyword):
		return "#cba6f7" // Mauve
	case tt.InCategory(chromalib.Comment):
		return "#6c7086" // Muted gray
	case tt.InSubCategory(chromalib.LiteralString):
		return "#a6e3a1" // Green
	case tt.InSubCategory(chromalib.LiteralNumber):
		return "#fab387" // Peach
	case tt == chromalib.NameFunction, tt == chromalib.NameFunctionMagic:
		return "#89b4fa" // Blue
	case tt == chromalib.NameConstant:
		return "#f38ba8" // Red
	case tt.InCategory(chromalib.Operator):
		return "#94e2d5" // Teal
	default:
		return ""
	}
}
