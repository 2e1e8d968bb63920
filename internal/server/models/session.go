package models

import "time"

// Session binds an opaque token to an authenticated identity.
type Session struct {
	Token     string
	UserID    string
	UserName  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
