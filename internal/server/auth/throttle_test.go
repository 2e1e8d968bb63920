package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginThrottle_LimitsPerKey(t *testing.T) {
	th := NewLoginThrottle(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, th.Allow(ctx, "10.0.0.1"), "attempt %d", i+1)
	}
	assert.False(t, th.Allow(ctx, "10.0.0.1"))
	assert.True(t, th.Allow(ctx, "10.0.0.2"), "other clients are unaffected")
}

func TestLoginThrottle_Disabled(t *testing.T) {
	th := NewLoginThrottle(0)
	for i := 0; i < 100; i++ {
		assert.True(t, th.Allow(context.Background(), "k"))
	}
}
