package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fair_rps/internal/service"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

const RoundIDKey = "round_id"

// RoundAuth checks the bearer token issued with a round and stores its round
// id in the context. The token must belong to the round in the :id param.
func RoundAuth(tokens *service.RoundTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		roundID, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if id := c.Param("id"); id != "" && id != roundID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token is for another round"})
			return
		}

		c.Set(RoundIDKey, roundID)
		c.Next()
	}
}

// RoundRateLimit limits move attempts per round (not per IP) using Redis.
// Requires RoundAuth to run before this.
func RoundRateLimit(client *redis.Client, maxAttempts int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		roundID := c.GetString(RoundIDKey)
		if roundID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		key := "round_rl:" + roundID + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		if !allowRedis(c, client, key, maxAttempts, window, "round:"+c.FullPath()) {
			return
		}
		c.Next()
	}
}
