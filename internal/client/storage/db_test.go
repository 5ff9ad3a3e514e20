package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewStore(db, testLogger())
	require.NoError(t, s.Set(ctx, KeyUserToken, "tok"))

	var got string
	found, err := s.Get(ctx, KeyUserToken, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "tok", got)
}
