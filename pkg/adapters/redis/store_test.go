package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/dicetale/pkg/adapters/redis"
	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/aretw0/dicetale/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunStoryStoreContract(t, store)
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "expiring", domain.NewStory("the")))

	_, err := store.Load(ctx, "expiring")
	require.NoError(t, err)

	// Jump past the TTL; the payload must be gone.
	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "expiring")
	assert.ErrorIs(t, err, domain.ErrStoryNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("classroom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", domain.NewStory("the")))
	assert.True(t, mr.Exists("classroom:abc"), "story key should carry the configured prefix")
}

func TestRedisStore_List(t *testing.T) {
	store, _ := newTestStore(t)
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
