package http

import (
	"github.com/gin-gonic/gin"
)

// processUpdateConfigReq binds the admin config update body.
func (h *handler) processUpdateConfigReq(c *gin.Context) (updateConfigReq, error) {
	var req updateConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSaveTokensReq binds the admin token upload body.
func (h *handler) processSaveTokensReq(c *gin.Context) (saveTokensReq, error) {
	var req saveTokensReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
