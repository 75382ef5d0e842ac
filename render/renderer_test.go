package render_test

import (
	"strings"
	"testing"
	"time"

	charmlipgloss "github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/relic"
	"github.com/fwojciec/relic/lipgloss"
	"github.com/fwojciec/relic/render"
)

// Plain output keeps assertions byte-exact.
func init() {
	charmlipgloss.SetColorProfile(termenv.Ascii)
}

func match(file string, line int) relic.Match {
	return relic.Match{
		File:    file,
		Line:    line,
		Content: "// TODO fix bug",
		Date:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Hash:    "abc123def4567890abc123def4567890abc123de",
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders header, context and highlighted match", func(t *testing.T) {
		t.Parallel()
		r := render.New(lipgloss.DefaultTheme(), nil)
		lines := map[string][]string{
			"a.go": {"package a", "", "// TODO fix bug", "func f() {}", "x"},
		}
		blocks := []relic.Block{{
			File: "a.go", Start: 1, End: 5, Matches: []relic.Match{match("a.go", 3)},
		}}

		var sb strings.Builder
		r.Render(&sb, blocks, lines)

		out := sb.String()
		assert.Contains(t, out, "a.go (added 2025-01-15 in abc123de)")
		assert.Contains(t, out, "   1: package a")
		assert.Contains(t, out, "   3: // TODO fix bug")
		assert.Contains(t, out, "   5: x")
	})

	t.Run("highlights every match in a merged block and notes the rest", func(t *testing.T) {
		t.Parallel()
		r := render.New(lipgloss.DefaultTheme(), nil)
		lines := map[string][]string{
			"a.go": {"a", "// TODO fix bug", "b", "// TODO fix bug", "c"},
		}
		second := match("a.go", 4)
		second.Date = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		blocks := []relic.Block{{
			File: "a.go", Start: 1, End: 5,
			Matches: []relic.Match{match("a.go", 2), second},
		}}

		var sb strings.Builder
		r.Render(&sb, blocks, lines)

		out := sb.String()
		// One header only; both matched lines present; the second match's
		// provenance appears as a note rather than a repeated window.
		assert.Equal(t, 1, strings.Count(out, "a.go (added"))
		assert.Contains(t, out, "   2: // TODO fix bug")
		assert.Contains(t, out, "   4: // TODO fix bug")
		assert.Contains(t, out, "also line 4: // TODO fix bug (added 2025-02-01 in abc123de)")
	})

	t.Run("provenance-only fallback for unreadable files", func(t *testing.T) {
		t.Parallel()
		r := render.New(lipgloss.DefaultTheme(), nil)
		blocks := []relic.Block{{File: "gone.go", Matches: []relic.Match{match("gone.go", 7)}}}

		var sb strings.Builder
		r.Render(&sb, blocks, nil)

		assert.Equal(t, "gone.go:7: // TODO fix bug (added 2025-01-15 in abc123de)\n", sb.String())
	})

	t.Run("separates blocks with a blank line", func(t *testing.T) {
		t.Parallel()
		r := render.New(lipgloss.DefaultTheme(), nil)
		lines := map[string][]string{"a.go": {"// TODO fix bug", "x", "y", "// TODO fix bug"}}
		blocks := []relic.Block{
			{File: "a.go", Start: 1, End: 1, Matches: []relic.Match{match("a.go", 1)}},
			{File: "a.go", Start: 4, End: 4, Matches: []relic.Match{match("a.go", 4)}},
		}

		var sb strings.Builder
		r.Render(&sb, blocks, lines)

		assert.Contains(t, sb.String(), "\n\na.go (added")
	})

	t.Run("identical input renders identical output", func(t *testing.T) {
		t.Parallel()
		r := render.New(lipgloss.DefaultTheme(), nil)
		lines := map[string][]string{"a.go": {"a", "// TODO fix bug", "b"}}
		blocks := []relic.Block{{
			File: "a.go", Start: 1, End: 3, Matches: []relic.Match{match("a.go", 2)},
		}}

		var first, second strings.Builder
		r.Render(&first, blocks, lines)
		r.Render(&second, blocks, lines)

		require.Equal(t, first.String(), second.String())
	})
}
