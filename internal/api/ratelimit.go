package api

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=ratelimit_mocks_test.go -package=api_test

// RequestCounter counts hits on key within a fixed window.
type RequestCounter interface {
	// Hit increments key and returns the new count together with the time
	// left until the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}

// RedisCounter is a fixed-window RequestCounter backed by INCR and EXPIRE.
type RedisCounter struct {
	client redis.Cmdable
}

func NewRedisCounter(client redis.Cmdable) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("incr %s: %w", key, err)
	}
	// First hit of the window starts the clock.
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return count, window, fmt.Errorf("expire %s: %w", key, err)
		}
		return count, window, nil
	}
	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return count, window, fmt.Errorf("ttl %s: %w", key, err)
	}
	if ttl < 0 {
		// A key left without expiry would block the caller forever.
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			log.WithError(err).WithField("key", key).Warn("rate limit: failed to restore expiry")
		}
		ttl = window
	}
	return count, ttl, nil
}

// RateLimiter bounds requests per client IP. A nil counter disables limiting.
type RateLimiter struct {
	counter RequestCounter
}

func NewRateLimiter(counter RequestCounter) *RateLimiter {
	return &RateLimiter{counter: counter}
}

// Limit allows at most limit requests per window for the named route group.
// Counter failures let the request through.
func (rl *RateLimiter) Limit(name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.counter == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", name, c.ClientIP())
		count, resetIn, err := rl.counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			log.WithError(err).WithField("limiter", name).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count > int64(limit) {
			retryAfter := int(math.Ceil(resetIn.Seconds()))
			c.Header("Retry-After", fmt.Sprint(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too many requests",
				"retryAfter": retryAfter,
			})
			return
		}
		c.Next()
	}
}
