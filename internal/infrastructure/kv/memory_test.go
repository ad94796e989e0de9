package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok := store.Get(ctx, "cart")
	assert.False(t, ok, "absent key reads as not found")

	require.NoError(t, store.Set(ctx, "cart", `[{"quantity":1}]`))
	val, ok := store.Get(ctx, "cart")
	require.True(t, ok)
	assert.Equal(t, `[{"quantity":1}]`, val)

	require.NoError(t, store.Set(ctx, "cart", `[]`))
	val, _ = store.Get(ctx, "cart")
	assert.Equal(t, `[]`, val, "set overwrites")

	require.NoError(t, store.Remove(ctx, "cart"))
	_, ok = store.Get(ctx, "cart")
	assert.False(t, ok)

	assert.NoError(t, store.Remove(ctx, "cart"), "removing an absent key is a no-op")
}
