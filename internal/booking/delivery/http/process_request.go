package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the booking request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
