package http

import (
	"github.com/gin-gonic/gin"
)

// processListSlotsReq binds and validates the availability query parameters.
func (h *handler) processListSlotsReq(c *gin.Context) (listSlotsReq, error) {
	var req listSlotsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
