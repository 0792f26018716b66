// Package common defines shared constants and sentinel errors used across
// the blogctl client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Credential lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Favorite toggle preconditions.
	ErrAuthRequired   = errors.New("authentication required")
	ErrToggleInFlight = errors.New("favorite toggle already in progress")

	// Draft editing preconditions.
	ErrLastTagSlot = errors.New("cannot remove the last tag slot")
)
