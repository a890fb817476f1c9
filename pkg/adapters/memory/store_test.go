package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/dicetale/pkg/adapters/memory"
	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/aretw0/dicetale/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunStoryStoreContract(t, memory.NewStore())
}

func TestMemoryStore_List(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "one", domain.NewStory("the")))
	require.NoError(t, store.Save(ctx, "two", domain.NewStory("a")))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, ids)

	require.NoError(t, store.Delete(ctx, "one"))
	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, ids)
}
