package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"schedlink/pkg/response"
)

// Auth guards admin routes with a static bearer key.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(m.adminAPIKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "admin auth rejected from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
