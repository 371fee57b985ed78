package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create then get returns the claims", func(t *testing.T) {
		store := NewMemoryStore()

		err := store.Create(ctx, Session{
			SessionID: "tok-1",
			UserID:    "user-1",
			Username:  "alice",
			ExpiresAt: time.Now().Add(time.Hour),
		})
		require.NoError(t, err)

		got, err := store.Get(ctx, "tok-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "user-1", got.UserID)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("unknown token resolves to nil", func(t *testing.T) {
		store := NewMemoryStore()

		got, err := store.Get(ctx, "never-issued")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired session is dropped on access", func(t *testing.T) {
		store := NewMemoryStore()
		store.sessions["tok-old"] = Session{
			SessionID: "tok-old",
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}

		got, err := store.Get(ctx, "tok-old")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := NewMemoryStore()

		err := store.Create(ctx, Session{
			SessionID: "tok-1",
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(time.Hour),
		})
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, "tok-1"))
		require.NoError(t, store.Delete(ctx, "tok-1"))
		require.NoError(t, store.Delete(ctx, "never-issued"))

		got, err := store.Get(ctx, "tok-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("rejects sessions without required fields", func(t *testing.T) {
		store := NewMemoryStore()

		err := store.Create(ctx, Session{UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)})
		assert.Error(t, err)

		err = store.Create(ctx, Session{SessionID: "tok", ExpiresAt: time.Now().Add(time.Hour)})
		assert.Error(t, err)

		err = store.Create(ctx, Session{SessionID: "tok", UserID: "u", ExpiresAt: time.Now().Add(-time.Hour)})
		assert.Error(t, err)
	})
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 43) // 32 bytes base64url
}
