package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// SourceLimiter holds one token bucket per remote data source.
type SourceLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewSourceLimiter(config RateLimitConfig) *SourceLimiter {
	return &SourceLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewSourceLimiterWithDefaults() *SourceLimiter {
	return NewSourceLimiter(DefaultConfig())
}

func (s *SourceLimiter) GetLimiter(source string) *rate.Limiter {
	s.mu.RLock()
	limiter, exists := s.limiters[source]
	s.mu.RUnlock()

	if exists {
		return limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if limiter, exists = s.limiters[source]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(s.defaults.RequestsPerSecond), s.defaults.BurstSize)
	s.limiters[source] = limiter
	return limiter
}

func (s *SourceLimiter) SetSourceLimit(source string, rps float64, burst int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.limiters[source] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (s *SourceLimiter) Wait(ctx context.Context, source string) error {
	return s.GetLimiter(source).Wait(ctx)
}
