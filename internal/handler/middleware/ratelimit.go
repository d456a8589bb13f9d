package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"salon-reservas/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

type RateLimitMiddleware struct {
	limiter *cache.RateLimiter
}

func NewRateLimitMiddleware(limiter *cache.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit throttles per client IP and route path over a fixed window.
// Redis failures let the request through rather than blocking traffic.
func (m *RateLimitMiddleware) Limit(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		allowed, err := m.limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			slog.Warn("Rate limit check failed", "error", err.Error(), "key", key)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Demasiadas solicitudes, intenta de nuevo más tarde",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
