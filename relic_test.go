package relic_test

import (
	"testing"

	"github.com/fwojciec/relic"
	"github.com/stretchr/testify/assert"
)

func TestMatch_ShortHash(t *testing.T) {
	t.Parallel()

	t.Run("truncates full hashes to 8 characters", func(t *testing.T) {
		t.Parallel()

		m := relic.Match{Hash: "abc123def4567890abc123def4567890abc123de"}

		assert.Equal(t, "abc123de", m.ShortHash())
	})

	t.Run("keeps hashes shorter than 8 characters whole", func(t *testing.T) {
		t.Parallel()

		m := relic.Match{Hash: "abc12"}

		assert.Equal(t, "abc12", m.ShortHash())
	})

	t.Run("handles empty hash", func(t *testing.T) {
		t.Parallel()

		m := relic.Match{}

		assert.Equal(t, "", m.ShortHash())
	})
}
