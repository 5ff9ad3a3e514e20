// Package storage implements the client's durable key/value store. Values
// are JSON-encoded into the session_state table so any external reader of
// the state file sees plain JSON under well-known keys. The store keeps no
// in-memory cache: every Get re-reads the database, so observers always see
// the last committed value.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"brewdesk/internal/common"
	"brewdesk/internal/dbx"
	"brewdesk/internal/logging"
)

// Persisted slot names. External readers and writers of the client state
// must use these exact keys and JSON encoding to interoperate.
const (
	KeyUserToken    = "user_token"
	KeyUserInfo     = "user_info"
	KeyRegStep      = "reg_step"
	KeyRegEmail     = "reg_email"
	KeyRegTempToken = "reg_temp_token"
)

type Store struct {
	db  dbx.DBTX
	log logging.Logger
}

// NewStore binds a store to a database handle. The handle may be a *sql.DB
// or a transaction, so multi-key updates can run atomically via dbx.WithTx.
func NewStore(db dbx.DBTX, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

// WithTx returns a store bound to the given transactional handle, keeping
// the same logger.
func (s *Store) WithTx(tx dbx.DBTX) *Store {
	return &Store{db: tx, log: s.log}
}

// Set JSON-encodes value and upserts it under key. An encoding failure is
// logged and the write dropped, leaving any prior stored value untouched.
// Database failures are returned wrapped.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warn(ctx, "dropping unencodable write", "key", key, "err", err)
		return nil
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(payload))
	if err != nil {
		return fmt.Errorf("failed to set session_state[%s]: %w", key, err)
	}
	return nil
}

// Get reads the value stored under key into dest. It reports false when the
// key is absent. A stored value that fails to decode is logged and reported
// as (false, common.ErrCorruptValue); callers decide whether to discard the
// entry.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get session_state[%s]: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		s.log.Warn(ctx, "discarding corrupt stored value", "key", key, "err", err)
		return false, fmt.Errorf("session_state[%s]: %w", key, common.ErrCorruptValue)
	}
	return true, nil
}

// Remove deletes the entry under key. Removing an absent key is a no-op.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to remove session_state[%s]: %w", key, err)
	}
	return nil
}

// Clear deletes every entry in the store.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_state`)
	if err != nil {
		return fmt.Errorf("failed to clear session_state: %w", err)
	}
	return nil
}
