package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"schedlink/pkg/response"
)

// RateLimit throttles public endpoints per client IP using a token bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m Middleware) limiterFor(clientIP string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(clientIP); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rate.Limit(m.rateCfg.RequestsPerSecond), m.rateCfg.Burst)
	// A racing request may have added one first; keep whichever won.
	if prev, ok, _ := m.limiters.PeekOrAdd(clientIP, limiter); ok {
		return prev
	}
	return limiter
}
