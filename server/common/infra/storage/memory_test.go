package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "sess", KeyToken)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "sess", KeyToken, "t-1"))
	require.NoError(t, s.Set(ctx, "sess", KeyAccountID, "acc-1"))

	v, err := s.Get(ctx, "sess", KeyToken)
	require.NoError(t, err)
	require.Equal(t, "t-1", v)

	// sessions are isolated
	_, err = s.Get(ctx, "other", KeyToken)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "sess", KeyToken, "t-1"))
	require.NoError(t, s.Set(ctx, "sess", KeyUser, "{}"))

	require.NoError(t, s.Delete(ctx, "sess", KeyToken))
	_, err := s.Get(ctx, "sess", KeyToken)
	require.ErrorIs(t, err, ErrNotFound)

	v, err := s.Get(ctx, "sess", KeyUser)
	require.NoError(t, err)
	require.Equal(t, "{}", v)

	require.NoError(t, s.Clear(ctx, "sess"))
	_, err = s.Get(ctx, "sess", KeyUser)
	require.ErrorIs(t, err, ErrNotFound)

	// deleting and clearing an absent session is a no-op
	require.NoError(t, s.Delete(ctx, "gone", SessionKeys...))
	require.NoError(t, s.Clear(ctx, "gone"))
}

func TestMemoryStoreLastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "sess", KeyAccountID, "first"))
	require.NoError(t, s.Set(ctx, "sess", KeyAccountID, "second"))

	v, err := s.Get(ctx, "sess", KeyAccountID)
	require.NoError(t, err)
	require.Equal(t, "second", v)
}
