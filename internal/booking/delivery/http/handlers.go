package http

import (
	"github.com/gin-gonic/gin"

	"schedlink/pkg/response"
)

// Create godoc
// @Summary     Book a slot
// @Description Re-checks the slot against the owner's calendar and creates the event if it is still free.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Booking request"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown event type"
// @Failure     409 {object} response.Resp "Slot no longer available"
// @Failure     503 {object} response.Resp "Calendar not connected"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}
