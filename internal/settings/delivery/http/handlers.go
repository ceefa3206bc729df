package http

import (
	"github.com/gin-gonic/gin"

	"schedlink/pkg/response"
)

// GetPublicConfig godoc
// @Summary     Public booking-page config
// @Description Returns the visitor-safe view of the scheduling config.
// @Tags        Config
// @Produce     json
// @Success     200 {object} settings.PublicConfig
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/config [GET]
func (h *handler) GetPublicConfig(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Public(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Public: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// GetConfig godoc
// @Summary     Full scheduling config
// @Description Returns the complete config, including schedule and policy.
// @Tags        Admin
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} model.SchedConfig
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/config [GET]
func (h *handler) GetConfig(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// UpdateConfig godoc
// @Summary     Replace the scheduling config
// @Description Validates and persists a complete new config.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body updateConfigReq true "New config"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/config [PUT]
func (h *handler) UpdateConfig(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateConfigReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Update(ctx, req.Config); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// GetSetupToken godoc
// @Summary     Token storage status
// @Description Reports the token storage mode and, in memory mode, the encrypted refresh token for environment setup.
// @Tags        Admin
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} setupTokenResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/setup-token [GET]
func (h *handler) GetSetupToken(c *gin.Context) {
	response.OK(c, h.newSetupTokenResp())
}

// SaveTokens godoc
// @Summary     Store owner calendar tokens
// @Description Encrypts and stores the owner's OAuth token set.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body saveTokensReq true "Owner token set"
// @Success     200 {object} setupTokenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/tokens [PUT]
func (h *handler) SaveTokens(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveTokensReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.tokens.Save(ctx, req.toTokens()); err != nil {
		h.l.Errorf(ctx, "tokens.Save: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSetupTokenResp())
}
