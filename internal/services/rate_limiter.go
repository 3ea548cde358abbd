package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comunidadevida/acampamento-api/internal/config"
	"go.uber.org/zap"
)

// RateLimiter throttles the public submission endpoint per client IP using
// a fixed Redis window, so limits survive process restarts.
type RateLimiter struct {
	limit  int
	window time.Duration
	logger *zap.Logger
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Allow reports whether a request from the given IP should proceed. The
// limiter fails open: a Redis outage must not block registrations.
func (rl *RateLimiter) Allow(ctx context.Context, ip string) bool {
	if config.Redis == nil {
		return true
	}

	key := fmt.Sprintf("ratelimit:inscricao:%s", ip)

	count, err := config.Redis.Incr(ctx, key).Result()
	if err != nil {
		rl.logger.Warn("rate limiter unavailable, allowing request", zap.Error(err))
		return true
	}

	if count == 1 {
		if err := config.Redis.Expire(ctx, key, rl.window).Err(); err != nil {
			rl.logger.Warn("failed to set rate limit window", zap.Error(err))
		}
	}

	if count > int64(rl.limit) {
		rl.logger.Warn("rate limit exceeded",
			zap.String("ip", ip),
			zap.Int64("count", count),
			zap.Int("limit", rl.limit))
		return false
	}

	return true
}
