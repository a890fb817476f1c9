package sampler

import (
	"testing"

	"github.com/aretw0/dicetale/internal/markov"
	"github.com/aretw0/dicetale/pkg/adapters/dice"
	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildModel(t *testing.T, corpus ...string) *domain.Model {
	t.Helper()
	result, err := markov.Build(corpus)
	require.NoError(t, err)
	return result.Model
}

func TestSampler_Step(t *testing.T) {
	model := buildModel(t, "the cat sat.")
	s := New(model)

	t.Run("Resolves a roll to the successor", func(t *testing.T) {
		next, err := s.Step("the", 3)
		require.NoError(t, err)
		assert.Equal(t, domain.Token("cat"), next)
	})

	t.Run("Terminal word resolves to END", func(t *testing.T) {
		next, err := s.Step("sat", 5)
		require.NoError(t, err)
		assert.True(t, next.IsEnd())
	})

	t.Run("Invalid roll", func(t *testing.T) {
		_, err := s.Step("the", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidRoll)

		_, err = s.Step("the", 7)
		assert.ErrorIs(t, err, domain.ErrInvalidRoll)
	})

	t.Run("Unknown word", func(t *testing.T) {
		_, err := s.Step("zebra", 3)
		assert.ErrorIs(t, err, domain.ErrUnknownWord)
	})
}

func TestSampler_Advance(t *testing.T) {
	model := buildModel(t, "the cat sat.")
	s := New(model)

	t.Run("Walks to END", func(t *testing.T) {
		story := domain.NewStory("the")

		require.NoError(t, s.Advance(story, 1))
		require.NoError(t, s.Advance(story, 4))
		assert.Equal(t, domain.StatusAwaitingRoll, story.Status)

		require.NoError(t, s.Advance(story, 6))
		assert.Equal(t, domain.StatusComplete, story.Status)
		assert.Equal(t, domain.StopEndReached, story.Stop)
		assert.Equal(t, []domain.Token{"the", "cat", "sat"}, story.Words)
		assert.Equal(t, []int{1, 4, 6}, story.Rolls)
		assert.Equal(t, "The cat sat.", story.Sentence())
	})

	t.Run("Rejects rolls on a complete story", func(t *testing.T) {
		story := domain.NewStory("sat")
		require.NoError(t, s.Advance(story, 2))
		require.Equal(t, domain.StatusComplete, story.Status)

		assert.ErrorIs(t, s.Advance(story, 2), domain.ErrStoryComplete)
	})

	t.Run("Failed roll leaves the story untouched", func(t *testing.T) {
		story := domain.NewStory("the")
		assert.ErrorIs(t, s.Advance(story, 9), domain.ErrInvalidRoll)
		assert.Equal(t, []domain.Token{"the"}, story.Words)
		assert.Empty(t, story.Rolls)
	})
}

func TestSampler_Run(t *testing.T) {
	t.Run("Drains scripted rolls until END", func(t *testing.T) {
		model := buildModel(t, "the cat sat.")
		s := New(model)
		story := domain.NewStory("the")

		err := s.Run(story, dice.NewScriptedSource(1, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, "The cat sat.", story.Sentence())
		assert.Equal(t, domain.StopEndReached, story.Stop)
	})

	t.Run("Length guard cuts off a loop", func(t *testing.T) {
		// 'a' loops back onto itself more often than it ends.
		model := buildModel(t, "a a a a a.")
		s := New(model, WithMaxWords(5))
		story := domain.NewStory("a")

		err := s.Run(story, dice.NewScriptedSource(1, 1, 1, 1, 1, 1, 1, 1, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusComplete, story.Status)
		assert.Equal(t, domain.StopMaxLength, story.Stop)
		assert.Len(t, story.Words, 5)
	})

	t.Run("Exhausted roll source surfaces as error", func(t *testing.T) {
		model := buildModel(t, "the cat sat.")
		s := New(model)
		story := domain.NewStory("the")

		err := s.Run(story, dice.NewScriptedSource(1))
		assert.ErrorIs(t, err, dice.ErrExhausted)
	})

	t.Run("Seeded source is reproducible", func(t *testing.T) {
		model := buildModel(t, "i like cake.", "i like tea. i bake cake.")
		s := New(model)

		first := domain.NewStory("i")
		require.NoError(t, s.Run(first, dice.NewPseudoSource(7)))

		second := domain.NewStory("i")
		require.NoError(t, s.Run(second, dice.NewPseudoSource(7)))

		assert.Equal(t, first.Words, second.Words)
		assert.Equal(t, first.Rolls, second.Rolls)
	})
}
