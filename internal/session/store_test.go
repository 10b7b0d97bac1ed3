package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestRedisStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Hour)

	sid, err := store.Create(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, sid)
	assert.Equal(t, time.Hour, mr.TTL("session:"+sid))

	data, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, uint(7), data.UserID)

	require.NoError(t, store.Destroy(ctx, sid))
	_, err = store.Get(ctx, sid)
	require.ErrorIs(t, err, ErrNotFound)

	// Destroying twice is fine
	require.NoError(t, store.Destroy(ctx, sid))
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Minute)

	sid, err := store.Create(ctx, 1)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, sid)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Minute)
	mr.Close()

	_, err := store.Create(ctx, 1)
	require.Error(t, err)
	_, err = store.Get(ctx, "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	require.Error(t, store.Destroy(ctx, "x"))
}
