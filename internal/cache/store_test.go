package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set(ctx, "k", payload{Name: "feed", Count: 3}, time.Minute))

	var got payload
	found, err := store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "feed", Count: 3}, got)
}

func TestRedisStoreMiss(t *testing.T) {
	store, _ := newTestStore(t)

	var got map[string]any
	found, err := store.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, FeedKey, []int{1, 2, 3}, FeedTTL))

	mr.FastForward(FeedTTL + time.Second)

	var got []int
	found, err := store.Get(ctx, FeedKey, &got)
	require.NoError(t, err)
	assert.False(t, found, "entry must expire after the TTL window")
}

func TestAside(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *[]string) func() error {
		return func() error {
			calls++
			*dest = []string{"fresh"}
			return nil
		}
	}

	var first []string
	require.NoError(t, Aside(ctx, store, "feed", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)

	// Second read is served from the cache; fetch must not run again.
	var second []string
	require.NoError(t, Aside(ctx, store, "feed", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"fresh"}, second)
}

func TestAsideNilStoreBypasses(t *testing.T) {
	calls := 0
	var dest []string
	err := Aside(context.Background(), nil, "feed", &dest, time.Minute, func() error {
		calls++
		dest = []string{"direct"}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"direct"}, dest)
}

func TestInvalidateFeed(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, FeedKey, "cached", FeedTTL))
	require.NoError(t, InvalidateFeed(ctx, store))

	var got string
	found, err := store.Get(ctx, FeedKey, &got)
	require.NoError(t, err)
	assert.False(t, found)
}
