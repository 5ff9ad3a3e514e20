// Package common defines shared sentinel errors used across the brewdesk
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Persistence errors.
	ErrCorruptValue = errors.New("corrupt stored value")

	// State-model errors.
	ErrInvalidState = errors.New("invalid state")

	// API errors.
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
)
