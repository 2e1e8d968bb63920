package auth

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"
)

// LoginThrottle limits login attempts per client key.
type LoginThrottle interface {
	Allow(ctx context.Context, key string) bool
}

// NewLoginThrottle returns a token-bucket throttle allowing perMinute
// attempts per key, with a burst of the same size. perMinute <= 0 disables
// throttling.
func NewLoginThrottle(perMinute int) LoginThrottle {
	if perMinute <= 0 {
		return noThrottle{}
	}
	return ratelimit.New(&ratelimit.Config{
		Rate:     perMinute,
		Burst:    perMinute,
		Interval: time.Minute,
	})
}

type noThrottle struct{}

func (noThrottle) Allow(context.Context, string) bool { return true }
