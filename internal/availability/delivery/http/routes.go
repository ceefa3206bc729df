package http

import (
	"github.com/gin-gonic/gin"

	"schedlink/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/availability", mw.RateLimit(), h.ListSlots)
}
