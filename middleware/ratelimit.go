package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/response"
)

// RateLimitConfig configures the token bucket rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *handler.Request) bool

	// KeyFunc derives the bucket key from a request (default: client key
	// from X-Forwarded-For, falling back to a shared bucket)
	KeyFunc func(r *handler.Request) string

	// Capacity is the maximum number of tokens in a bucket (default: 100)
	Capacity int

	// RefillRate is the number of tokens added per RefillInterval (default: capacity)
	RefillRate int

	// RefillInterval is the refill period (default: 1s)
	RefillInterval time.Duration
}

// RateLimit creates a rate limiting middleware with default configuration:
// 100 requests per second per client key.
func RateLimit() handler.Middleware {
	return RateLimitWithConfig(RateLimitConfig{})
}

// RateLimitWithConfig creates a rate limiting middleware with custom
// configuration. Each key gets its own token bucket; a request consumes one
// token and is rejected with 429 when the bucket is empty. The rejection
// carries a "retry_after_seconds" detail.
func RateLimitWithConfig(cfg RateLimitConfig) handler.Middleware {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(r *handler.Request) string {
			if ip := r.Header("X-Forwarded-For"); ip != "" {
				return ip
			}
			return "global"
		}
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = 100
	}
	if cfg.RefillRate <= 0 {
		cfg.RefillRate = cfg.Capacity
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}

	limiter := &tokenBucketLimiter{
		buckets:  make(map[string]*tokenBucket),
		capacity: cfg.Capacity,
		rate:     cfg.RefillRate,
		interval: cfg.RefillInterval,
	}

	return func(next handler.Func) handler.Func {
		return func(r *handler.Request) (*handler.Entity, error) {
			if cfg.Skip != nil && cfg.Skip(r) {
				return next(r)
			}

			if retryAfter, ok := limiter.allow(cfg.KeyFunc(r)); !ok {
				return nil, response.ErrTooManyRequests.WithDetails(map[string]any{
					"retry_after_seconds": strconv.FormatFloat(retryAfter.Seconds(), 'f', -1, 64),
				})
			}

			return next(r)
		}
	}
}

// tokenBucket holds the refill state for one key.
type tokenBucket struct {
	tokens     int
	lastRefill time.Time
}

// tokenBucketLimiter is an in-memory token bucket store. Refill happens
// lazily on access, so idle keys cost nothing between requests.
type tokenBucketLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*tokenBucket
	capacity int
	rate     int
	interval time.Duration
}

// allow consumes one token for the key. When the bucket is empty it reports
// how long until the next token becomes available.
func (l *tokenBucketLimiter) allow(key string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &tokenBucket{tokens: l.capacity, lastRefill: now}
		l.buckets[key] = b
	}

	if elapsed := now.Sub(b.lastRefill); elapsed >= l.interval {
		intervals := int(elapsed / l.interval)
		b.tokens = min(l.capacity, b.tokens+intervals*l.rate)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.interval)
	}

	if b.tokens <= 0 {
		return b.lastRefill.Add(l.interval).Sub(now), false
	}

	b.tokens--
	return 0, true
}
