package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoryStoreContract runs a suite of tests to verify that a StoryStore
// implementation adheres to the defined interface contract.
func RunStoryStoreContract(t *testing.T, store StoryStore) {
	ctx := context.Background()
	storyID := "contract-test-story-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		story := domain.NewStory("the")
		story.Words = append(story.Words, "cat")
		story.Rolls = append(story.Rolls, 3)
		story.Current = "cat"

		err := store.Save(ctx, storyID, story)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, storyID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, story.Current, loaded.Current)
		assert.Equal(t, story.Words, loaded.Words)
		assert.Equal(t, story.Rolls, loaded.Rolls)
		assert.Equal(t, domain.StatusAwaitingRoll, loaded.Status)
	})

	t.Run("Load Isolation", func(t *testing.T) {
		story := domain.NewStory("the")
		require.NoError(t, store.Save(ctx, storyID, story))

		loaded, err := store.Load(ctx, storyID)
		require.NoError(t, err)

		// Mutating the loaded copy must not leak back into the store.
		loaded.Words = append(loaded.Words, "mutated")
		again, err := store.Load(ctx, storyID)
		require.NoError(t, err)
		assert.Equal(t, []domain.Token{"the"}, again.Words)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+storyID)
		assert.ErrorIs(t, err, domain.ErrStoryNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, storyID, domain.NewStory("the"))
		require.NoError(t, err)

		err = store.Delete(ctx, storyID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, storyID)
		assert.ErrorIs(t, err, domain.ErrStoryNotFound, "Load after Delete should return ErrStoryNotFound")
	})
}
