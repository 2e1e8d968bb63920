// Package models holds the server-side domain records.
package models

import "time"

// User is a registered account. Credential holds whatever the configured
// secret hasher produced; it is never the raw secret unless the plain
// hasher is in use.
type User struct {
	ID         string
	UserName   string
	Credential []byte
	CreatedAt  time.Time
}
