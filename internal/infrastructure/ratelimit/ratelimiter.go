package ratelimit

import "context"

// RateLimiter throttles a keyed action inside a sliding window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}
