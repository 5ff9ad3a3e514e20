package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoToken = errors.New("no token")

// TokenClaims is the subset of JWT claims surfaced for status display.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Claims decodes the stored token without verifying its signature. The
// server remains the authority on token validity; this is display-level
// information only and is never consulted for navigation gating.
func (s *Session) Claims() (*TokenClaims, error) {
	if s.token == "" {
		return nil, ErrNoToken
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.token, claims); err != nil {
		return nil, err
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
