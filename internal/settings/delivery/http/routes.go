package http

import (
	"github.com/gin-gonic/gin"

	"schedlink/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The admin
// group is protected by the bearer-key Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/config", mw.RateLimit(), h.GetPublicConfig)

	admin := rg.Group("/admin")
	{
		admin.GET("/config", mw.Auth(), h.GetConfig)
		admin.PUT("/config", mw.Auth(), h.UpdateConfig)
		admin.GET("/setup-token", mw.Auth(), h.GetSetupToken)
		admin.PUT("/tokens", mw.Auth(), h.SaveTokens)
	}
}
