// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
)

// ipWindow counts requests from one client within the current minute
type ipWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit implements a fixed-window per-IP rate limiter backed by local
// state. State is per process; a multi-instance deployment would need a
// shared store behind this.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		windows = make(map[string]*ipWindow)
	)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()

		mu.Lock()
		w, ok := windows[clientIP]
		if !ok || now.After(w.resetAt) {
			w = &ipWindow{resetAt: now.Add(time.Minute)}
			windows[clientIP] = w

			// Drop stale windows so the map doesn't grow unbounded
			for ip, old := range windows {
				if now.After(old.resetAt) {
					delete(windows, ip)
				}
			}
		}
		w.count++
		count := w.count
		resetAt := w.resetAt
		mu.Unlock()

		if count > cfg.Security.RateLimitPerMinute {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": int(time.Until(resetAt).Seconds()),
			})
			c.Abort()
			return
		}

		remaining := cfg.Security.RateLimitPerMinute - count
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Security.RateLimitPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		c.Next()
	}
}
