package dicetale_test

import (
	"context"
	"testing"

	"github.com/aretw0/dicetale"
	"github.com/aretw0/dicetale/pkg/adapters/corpus"
	"github.com/aretw0/dicetale/pkg/adapters/dice"
	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...dicetale.Option) *dicetale.Engine {
	t.Helper()

	loader := corpus.NewMemoryLoader("the cat sat. the cat ate.")
	opts = append([]dicetale.Option{dicetale.WithCorpusLoader(loader)}, opts...)

	engine, err := dicetale.New("test-corpus", opts...)
	require.NoError(t, err)
	return engine
}

func TestNew(t *testing.T) {
	t.Run("Builds the model on init", func(t *testing.T) {
		engine := newTestEngine(t)
		assert.Equal(t, 4, engine.Model().Len())
		assert.Equal(t, domain.Token("the"), engine.DefaultStart())
		assert.Empty(t, engine.Warnings())
	})

	t.Run("Requires a path without a custom loader", func(t *testing.T) {
		_, err := dicetale.New("")
		assert.Error(t, err)
	})

	t.Run("Empty corpus fails the build", func(t *testing.T) {
		_, err := dicetale.New("empty", dicetale.WithCorpusLoader(corpus.NewMemoryLoader()))
		assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
	})
}

func TestEngine_NewStory(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("Starts at a known word", func(t *testing.T) {
		story, err := engine.NewStory("cat")
		require.NoError(t, err)
		assert.Equal(t, []domain.Token{"cat"}, story.Words)
	})

	t.Run("Rejects unknown words", func(t *testing.T) {
		_, err := engine.NewStory("zebra")
		assert.ErrorIs(t, err, domain.ErrUnknownWord)
	})
}

func TestEngine_Advance(t *testing.T) {
	engine := newTestEngine(t)

	story, err := engine.NewStory("the")
	require.NoError(t, err)

	require.NoError(t, engine.Advance(story, 2)) // -> cat
	require.NoError(t, engine.Advance(story, 5)) // -> ate
	require.NoError(t, engine.Advance(story, 1)) // -> END

	assert.Equal(t, domain.StatusComplete, story.Status)
	assert.Equal(t, "The cat ate.", story.Sentence())
}

func TestEngine_Step(t *testing.T) {
	engine := newTestEngine(t)

	next, err := engine.Step("cat", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Token("sat"), next)

	_, err = engine.Step("cat", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidRoll)
}

func TestEngine_Preview(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("Same seed, same story", func(t *testing.T) {
		first, err := engine.Preview("the", dice.NewPseudoSource(99))
		require.NoError(t, err)
		second, err := engine.Preview("the", dice.NewPseudoSource(99))
		require.NoError(t, err)

		assert.Equal(t, first.Sentence(), second.Sentence())
		assert.Equal(t, first.Rolls, second.Rolls)
	})

	t.Run("Scripted rolls walk an exact path", func(t *testing.T) {
		story, err := engine.Preview("the", dice.NewScriptedSource(1, 2, 3))
		require.NoError(t, err)
		assert.Equal(t, "The cat sat.", story.Sentence())
		assert.Equal(t, domain.StopEndReached, story.Stop)
	})
}

func TestEngine_Sample(t *testing.T) {
	t.Run("Uses the configured roll source", func(t *testing.T) {
		engine := newTestEngine(t, dicetale.WithRollSource(dice.NewScriptedSource(1, 6, 2)))

		story, err := engine.Sample("the")
		require.NoError(t, err)
		assert.Equal(t, "The cat ate.", story.Sentence())
	})

	t.Run("Falls back to a random die", func(t *testing.T) {
		engine := newTestEngine(t)

		story, err := engine.Sample("the")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusComplete, story.Status)
	})
}

func TestEngine_MaxStoryLength(t *testing.T) {
	loader := corpus.NewMemoryLoader("a a a a a.")
	engine, err := dicetale.New("loop", dicetale.WithCorpusLoader(loader), dicetale.WithMaxStoryLength(4))
	require.NoError(t, err)

	story, err := engine.Preview("a", dice.NewScriptedSource(1, 1, 1, 1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, domain.StopMaxLength, story.Stop)
	assert.Len(t, story.Words, 4)
}

func TestEngine_Reload(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.Reload(context.Background()))
	assert.Equal(t, 4, engine.Model().Len())
}

func TestEngine_Watch(t *testing.T) {
	// The memory loader does not implement watching.
	engine := newTestEngine(t)
	_, err := engine.Watch(context.Background())
	assert.Error(t, err)
}
