package crawl

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces requests to the documentation site using a token bucket
// with a burst of 1. The crawl is strictly sequential, so the limiter
// only spaces requests out; it never reorders them. A nil *Limiter is
// valid and means unlimited.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a Limiter allowing rps requests per second.
// A non-positive rps returns nil (unlimited).
func NewLimiter(rps float64) *Limiter {
	if rps <= 0 {
		return nil
	}
	return &Limiter{l: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.l.Wait(ctx)
}
