// Package common defines shared constants and sentinel errors used across
// client and server layers of wanttogo. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal         = errors.New("internal error")
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrorStoreUnavailable = errors.New("store unavailable")

	// Account errors.
	ErrorValidation         = errors.New("username and password cannot be empty")
	ErrorUsernameTaken      = errors.New("username already taken")
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// Want-to-go list errors.
	ErrorDestinationNotFound = errors.New("destination not found")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// ErrorTooManyAttempts is returned when login throttling kicks in.
	ErrorTooManyAttempts = errors.New("too many login attempts")
)
