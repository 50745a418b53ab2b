package middleware

import (
	"net/http"
	"strconv"
	"time"

	"fair_rps/internal/logger"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

// RedisRateLimit implements a fixed-window rate limiter using Redis INCR/EXPIRE.
// key format: rl:<window_seconds>:<identifier>
// A nil client or a Redis error lets the request through.
func RedisRateLimit(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + c.ClientIP()
		if !allowRedis(c, client, key, maxRequests, window, c.FullPath()) {
			return
		}
		c.Next()
	}
}

// allowRedis counts one hit on key and aborts with 429 once the window is
// over its limit. It reports whether the request may continue.
func allowRedis(c *gin.Context, client *redis.Client, key string, maxRequests int, window time.Duration, endpoint string) bool {
	ctx := c.Request.Context()

	val, err := client.Incr(ctx, key).Result()
	if err != nil {
		logger.Warn("rate limiter redis error", "key", key, "error", err)
		c.Header("X-RateLimit-Error", "redis-error")
		return true
	}
	if val == 1 {
		client.Expire(ctx, key, window)
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(maxRequests)-val), 10))

	if val > int64(maxRequests) {
		RLBlocked.WithLabelValues(endpoint).Inc()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":       "rate limit exceeded",
			"retry_after": int(window.Seconds()),
		})
		return false
	}

	RLRequests.WithLabelValues(endpoint).Inc()
	return true
}
