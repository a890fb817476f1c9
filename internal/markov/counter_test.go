package markov

import (
	"testing"

	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccumulate(t *testing.T) {
	t.Run("Counts adjacent pairs", func(t *testing.T) {
		c := Accumulate([]string{"the cat sat. the cat ate."})

		assert.Equal(t, []domain.Token{"the", "cat", "sat", "ate"}, c.Words())
		assert.Equal(t, []SuccessorCount{{Next: "cat", Count: 2}}, c.Successors("the"))
		assert.Equal(t, []SuccessorCount{
			{Next: "sat", Count: 1},
			{Next: "ate", Count: 1},
		}, c.Successors("cat"))
		assert.Equal(t, []SuccessorCount{{Next: domain.End, Count: 1}}, c.Successors("sat"))
	})

	t.Run("End is never a source", func(t *testing.T) {
		c := Accumulate([]string{"a b. c d."})
		assert.Nil(t, c.Successors(domain.End))
		// The pair (END, c) must not exist; c starts a fresh sentence.
		assert.Equal(t, []SuccessorCount{{Next: "d", Count: 1}}, c.Successors("c"))
	})

	t.Run("Start words in first-seen order", func(t *testing.T) {
		c := Accumulate([]string{"the cat. a dog. the bird."})
		assert.Equal(t, []domain.Token{"the", "a"}, c.StartWords())
	})

	t.Run("Implicit end for trailing sentence", func(t *testing.T) {
		c := Accumulate([]string{"the cat"})
		assert.Equal(t, []SuccessorCount{{Next: domain.End, Count: 1}}, c.Successors("cat"))
	})

	t.Run("Counts accumulate across corpus entries", func(t *testing.T) {
		c := Accumulate([]string{"i like cake.", "i like tea."})
		assert.Equal(t, []SuccessorCount{{Next: "like", Count: 2}}, c.Successors("i"))
	})

	t.Run("Empty corpus yields zero tokens", func(t *testing.T) {
		c := Accumulate(nil)
		assert.Zero(t, c.TokenCount())
		assert.Empty(t, c.Words())
	})
}
