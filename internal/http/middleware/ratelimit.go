package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type windowEntry struct {
	start time.Time
	count int
}

// SimpleRateLimit is an in-memory fixed-window per-IP limiter. Each route
// gets its own window map; it works without any external service, so it
// keeps limiting even when the Redis limiter is failing open.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	seen := make(map[string]*windowEntry)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		e, ok := seen[ip]
		if !ok || now.Sub(e.start) > window {
			seen[ip] = &windowEntry{start: now, count: 1}
			mu.Unlock()
			c.Next()
			return
		}
		e.count++
		blocked := e.count > maxRequests
		mu.Unlock()

		if blocked {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
