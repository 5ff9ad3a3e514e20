// Package session holds the authenticated user's credential token and
// profile, mirrored into the persistence store so a restart reconstructs
// the last committed session.
package session

import (
	"context"
	"errors"

	"brewdesk/internal/client/storage"
	"brewdesk/internal/common"
	"brewdesk/internal/logging"
)

// Profile is the user record attached to a session. ID is the backend's
// user id, which the tenant-scoped endpoints key on; Name feeds the status
// line. The rest is optional.
type Profile struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Session couples the credential token with the user profile. The two are
// set and cleared together: Login populates both, Logout wipes both.
type Session struct {
	store *storage.Store
	log   logging.Logger
	token string
	user  *Profile
}

// New constructs a session hydrated from the persistence store. A stored
// profile that fails to decode is removed and the session continues with a
// nil user; the token is kept as read, so IsLoggedIn may be true with no
// profile on record. Consumers of User must tolerate nil.
func New(ctx context.Context, store *storage.Store, log logging.Logger) *Session {
	s := &Session{store: store, log: log}
	s.hydrate(ctx)
	return s
}

func (s *Session) hydrate(ctx context.Context) {
	var token string
	if _, err := s.store.Get(ctx, storage.KeyUserToken, &token); err != nil {
		if errors.Is(err, common.ErrCorruptValue) {
			_ = s.store.Remove(ctx, storage.KeyUserToken)
		}
		token = ""
	}
	s.token = token

	var user Profile
	found, err := s.store.Get(ctx, storage.KeyUserInfo, &user)
	if err != nil {
		if errors.Is(err, common.ErrCorruptValue) {
			_ = s.store.Remove(ctx, storage.KeyUserInfo)
			s.log.Warn(ctx, "stored profile unreadable, continuing without one", "logged_in", s.IsLoggedIn())
		}
		return
	}
	if found {
		s.user = &user
	}
}

// Login records the authenticated user and persists both slots.
// IsLoggedIn is guaranteed true afterward.
func (s *Session) Login(ctx context.Context, user Profile, token string) error {
	s.token = token
	s.user = &user

	if err := s.store.Set(ctx, storage.KeyUserToken, token); err != nil {
		return err
	}
	return s.store.Set(ctx, storage.KeyUserInfo, user)
}

// Logout clears the in-memory session and wipes the whole persisted store,
// onboarding slots included: the store is shared, and an explicit logout
// abandons any wizard in flight. Idempotent.
func (s *Session) Logout(ctx context.Context) error {
	s.token = ""
	s.user = nil
	return s.store.Clear(ctx)
}

// UpdateUser merges the non-empty fields of patch over the current profile
// (an empty base when no profile is on record) and re-persists it. The
// token is not touched.
func (s *Session) UpdateUser(ctx context.Context, patch Profile) error {
	base := Profile{}
	if s.user != nil {
		base = *s.user
	}
	if patch.ID != "" {
		base.ID = patch.ID
	}
	if patch.Name != "" {
		base.Name = patch.Name
	}
	if patch.Email != "" {
		base.Email = patch.Email
	}
	if patch.Role != "" {
		base.Role = patch.Role
	}
	s.user = &base
	return s.store.Set(ctx, storage.KeyUserInfo, base)
}

// IsLoggedIn reports whether a credential token is present.
func (s *Session) IsLoggedIn() bool {
	return s.token != ""
}

// Token returns the current credential token, "" when logged out.
func (s *Session) Token() string {
	return s.token
}

// User returns the current profile, nil when none is on record.
func (s *Session) User() *Profile {
	return s.user
}
