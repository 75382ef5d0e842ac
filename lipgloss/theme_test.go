package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/relic"
	"github.com/fwojciec/relic/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ relic.Theme = lipgloss.DefaultTheme()
	})

	t.Run("returns styles with file header coloring", func(t *testing.T) {
		t.Parallel()

		styles := lipgloss.DefaultTheme().Styles()

		assert.NotEmpty(t, styles.FileHeader.Foreground)
	})

	t.Run("returns styles with provenance coloring", func(t *testing.T) {
		t.Parallel()

		styles := lipgloss.DefaultTheme().Styles()

		assert.NotEmpty(t, styles.CommitDate.Foreground)
		assert.NotEmpty(t, styles.CommitHash.Foreground)
	})

	t.Run("returns styles with context coloring", func(t *testing.T) {
		t.Parallel()

		styles := lipgloss.DefaultTheme().Styles()

		assert.NotEmpty(t, styles.Context.Foreground)
	})
}

func TestLightTheme(t *testing.T) {
	t.Parallel()

	t.Run("differs from the dark theme", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, lipgloss.DarkTheme().Styles(), lipgloss.LightTheme().Styles())
	})
}
