package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
	assert.True(t, s.Expired(now.Add(time.Hour)))
}

func TestAddOutcome_String(t *testing.T) {
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "already_present", AlreadyPresent.String())
	assert.Equal(t, "unknown", AddOutcome(0).String())
}
