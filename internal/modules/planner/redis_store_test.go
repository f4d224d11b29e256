package planner

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a live Redis, e.g. ROAM_TEST_REDIS=localhost:6379.
func newTestRedisStore(t *testing.T) *RedisStore {
	addr := os.Getenv("ROAM_TEST_REDIS")
	if addr == "" {
		t.Skip("ROAM_TEST_REDIS not set; skipping redis store test")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Minute)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	sess := &Session{ID: "redis-test-s1", Provider: "openai", Model: "gpt-4o", CreatedAt: time.Now()}
	require.NoError(t, store.Create(ctx, sess))
	t.Cleanup(func() { _ = store.Delete(ctx, sess.ID) })

	require.NoError(t, store.AppendTurn(ctx, sess.ID, RoleUser, "plan my trip to Lisbon"))
	require.NoError(t, store.AppendTurn(ctx, sess.ID, RoleAssistant, "# Day 1"))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "openai", got.Provider)
	require.Len(t, got.History, 2)
	assert.Equal(t, "# Day 1", got.CurrentItinerary)

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreMissing(t *testing.T) {
	store := newTestRedisStore(t)
	_, err := store.Get(context.Background(), "redis-test-missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(context.Background(), "redis-test-missing"), ErrSessionNotFound)
}
