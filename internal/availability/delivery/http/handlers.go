package http

import (
	"github.com/gin-gonic/gin"

	"schedlink/pkg/response"
)

// ListSlots godoc
// @Summary     List bookable slots
// @Description Computes the open slots for an event type on a date, rendered in the visitor's timezone.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       event query string true "Event type slug"
// @Param       date  query string true "Date (YYYY-MM-DD)"
// @Param       tz    query string true "Visitor IANA timezone"
// @Success     200 {object} listSlotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown event type"
// @Failure     503 {object} response.Resp "Calendar not connected"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/availability [GET]
func (h *handler) ListSlots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListSlotsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ComputeSlots(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ComputeSlots: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListSlotsResp(req, output.Slots))
}
