package graph

import (
	"strings"
	"testing"

	"github.com/aretw0/dicetale/internal/markov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	result, err := markov.Build([]string{"the cat sat. the cat ate."})
	require.NoError(t, err)

	out := GenerateMermaid(result.Model)

	t.Run("Declares a top-down graph", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	})

	t.Run("Start words are circles", func(t *testing.T) {
		assert.Contains(t, out, `the(("the"))`)
	})

	t.Run("Ordinary words are rectangles", func(t *testing.T) {
		assert.Contains(t, out, `cat["cat"]`)
	})

	t.Run("END is a hexagon", func(t *testing.T) {
		assert.Contains(t, out, `END_SENTENCE{{"END"}}`)
	})

	t.Run("Edges carry face ranges", func(t *testing.T) {
		assert.Contains(t, out, `cat -- "1-3" --> sat`)
		assert.Contains(t, out, `cat -- "4-6" --> ate`)
		assert.Contains(t, out, `sat -- "1-6" --> END_SENTENCE`)
	})
}

func TestSanitizeMermaidID(t *testing.T) {
	assert.Equal(t, "a_b_c", sanitizeMermaidID("a.b-c"))
}
