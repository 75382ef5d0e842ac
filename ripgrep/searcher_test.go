package ripgrep_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fwojciec/relic"
	"github.com/fwojciec/relic/ripgrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRipgrep(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("rg"); err != nil {
		t.Skip("rg not installed")
	}
}

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("returns formatted matches with line numbers", func(t *testing.T) {
		t.Parallel()
		requireRipgrep(t)
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n// TODO fix\n"), 0o644)
		require.NoError(t, err)

		s := ripgrep.NewSearcher()
		out, err := s.Search(context.Background(), relic.SearchQuery{
			Pattern: "TODO",
			Context: 1,
			Dir:     dir,
		})

		require.NoError(t, err)
		assert.Contains(t, out, "TODO fix")
		assert.Contains(t, out, "2:")
	})

	t.Run("no matches is empty output, not an error", func(t *testing.T) {
		t.Parallel()
		requireRipgrep(t)
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n"), 0o644)
		require.NoError(t, err)

		s := ripgrep.NewSearcher()
		out, err := s.Search(context.Background(), relic.SearchQuery{
			Pattern: "TODO",
			Context: 1,
			Dir:     dir,
		})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("search errors are treated as empty output, not fatal", func(t *testing.T) {
		t.Parallel()
		requireRipgrep(t)

		s := ripgrep.NewSearcher()
		// Unbalanced parens make rg reject the pattern with exit 2.
		out, err := s.Search(context.Background(), relic.SearchQuery{
			Pattern: "TODO(",
			Context: 1,
			Dir:     t.TempDir(),
		})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("nonexistent directory is an empty result", func(t *testing.T) {
		t.Parallel()
		requireRipgrep(t)

		s := ripgrep.NewSearcher()
		out, err := s.Search(context.Background(), relic.SearchQuery{
			Pattern: "TODO",
			Context: 1,
			Dir:     filepath.Join(t.TempDir(), "does-not-exist"),
		})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("glob restricts matched files", func(t *testing.T) {
		t.Parallel()
		requireRipgrep(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("// TODO go\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("TODO txt\n"), 0o644))

		s := ripgrep.NewSearcher()
		out, err := s.Search(context.Background(), relic.SearchQuery{
			Pattern: "TODO",
			Context: 0,
			Glob:    "*.go",
			Dir:     dir,
		})

		require.NoError(t, err)
		assert.Contains(t, out, "TODO go")
		assert.NotContains(t, out, "TODO txt")
	})
}
