package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key loads as absent", func(t *testing.T) {
		kv := NewMemoryKV()

		_, ok, err := kv.Load(ctx, "expense-tracker")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		kv := NewMemoryKV()

		require.NoError(t, kv.Save(ctx, "slot", "value"))

		got, ok, err := kv.Load(ctx, "slot")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "value", got)
	})

	t.Run("save overwrites", func(t *testing.T) {
		kv := NewMemoryKV()

		require.NoError(t, kv.Save(ctx, "slot", "one"))
		require.NoError(t, kv.Save(ctx, "slot", "two"))

		got, _, err := kv.Load(ctx, "slot")
		require.NoError(t, err)
		assert.Equal(t, "two", got)
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		kv := NewMemoryKV()

		_, _, err := kv.Load(ctx, "")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}
