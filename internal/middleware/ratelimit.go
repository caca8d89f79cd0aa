package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"personal-task-management/pkg/response"
)

// RateLimit enforces a per-client token bucket. Clients are keyed by the
// authenticated user when present, by remote IP otherwise.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.rlConfig.Enabled {
			c.Next()
			return
		}

		key := ScopeFromContext(c).UserID
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(m.rlConfig.RequestsPerSecond), m.rlConfig.Burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
