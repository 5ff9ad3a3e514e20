package storage

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"brewdesk/internal/common"
	"brewdesk/internal/dbx"
	"brewdesk/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session_state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return NewStore(db, testLogger()), db
}

func TestSetAndGet_RoundTripsValues(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	type profile struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	require.NoError(t, s.Set(ctx, "user_info", profile{Name: "Ana", Email: "a@b.com"}))

	var got profile
	found, err := s.Get(ctx, "user_info", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, profile{Name: "Ana", Email: "a@b.com"}, got)
}

func TestGet_AbsentKey(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var got string
	found, err := s.Get(ctx, "absent", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestSet_OverwritesPreviousValue(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "reg_email", "old@b.com"))
	require.NoError(t, s.Set(ctx, "reg_email", "new@b.com"))

	var got string
	found, err := s.Get(ctx, "reg_email", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "new@b.com", got)
}

func TestSet_UnencodableValueDropsWrite(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "prior"))

	// Channels cannot be JSON-encoded; the prior value must survive.
	require.NoError(t, s.Set(ctx, "k", make(chan int)))

	var got string
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "prior", got)
}

func TestGet_CorruptValueReportedAsCorrupt(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session_state (key, value) VALUES ('user_info', '{not json')`)
	require.NoError(t, err)

	var got map[string]any
	found, err := s.Get(ctx, "user_info", &got)
	require.False(t, found)
	require.ErrorIs(t, err, common.ErrCorruptValue)
}

func TestRemove_IsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "reg_step", 2))
	require.NoError(t, s.Remove(ctx, "reg_step"))

	var got int
	found, err := s.Get(ctx, "reg_step", &got)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.Remove(ctx, "reg_step"))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user_token", "tok"))
	require.NoError(t, s.Set(ctx, "reg_email", "a@b.com"))
	require.NoError(t, s.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session_state`).Scan(&n))
	assert.Zero(t, n)
}

func TestWithTx_WritesAreAtomic(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, func(ctx context.Context, tx dbx.DBTX) error {
		ts := s.WithTx(tx)
		if err := ts.Set(ctx, "reg_step", 2); err != nil {
			return err
		}
		return ts.Set(ctx, "reg_email", "a@b.com")
	})
	require.NoError(t, err)

	var step int
	found, err := s.Get(ctx, "reg_step", &step)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, step)
}

func TestGet_DBErrorWrapped(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, db.Close())

	var got string
	found, err := s.Get(ctx, "k", &got)
	require.Error(t, err)
	require.False(t, found)
	require.Contains(t, err.Error(), "failed to get session_state[k]")
}
