package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := &Session{ID: "s1", Provider: "openai", Model: "gpt-4o", CreatedAt: time.Now()}
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "openai", got.Provider)
	assert.Equal(t, "gpt-4o", got.Model)
	assert.Empty(t, got.History)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreAppendTurn(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, &Session{ID: "s1"}))

	require.NoError(t, store.AppendTurn(ctx, "s1", RoleUser, "plan my trip"))
	require.NoError(t, store.AppendTurn(ctx, "s1", RoleAssistant, "# Day 1"))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got.History, 2)
	assert.Equal(t, RoleUser, got.History[0].Role)
	assert.Equal(t, "# Day 1", got.CurrentItinerary)
}

func TestMemoryStoreAppendTurnMissing(t *testing.T) {
	store := NewMemoryStore()
	err := store.AppendTurn(context.Background(), "nope", RoleUser, "hi there")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, &Session{ID: "s1"}))

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "s1"), ErrSessionNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, &Session{ID: "s1"}))
	require.NoError(t, store.AppendTurn(ctx, "s1", RoleUser, "original"))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	got.History[0].Content = "tampered"
	got.CurrentItinerary = "tampered"

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.History[0].Content)
	assert.Empty(t, again.CurrentItinerary)
}
