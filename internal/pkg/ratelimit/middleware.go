package ratelimit

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell/internal/pkg/response"
)

// Middleware enforces the limiter per client IP.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !limiter.Allow(key) {
			c.Header("Retry-After", limiter.ResetTime(key).UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT"))
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}
		c.Next()
	}
}
