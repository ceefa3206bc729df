package http

import (
	"schedlink/internal/availability"
	"schedlink/internal/model"
)

// --- Request DTOs ---

type listSlotsReq struct {
	Event    string `form:"event"    binding:"required"`
	Date     string `form:"date"     binding:"required"`
	Timezone string `form:"tz"       binding:"required"`
}

func (r listSlotsReq) toInput() availability.ComputeSlotsInput {
	return availability.ComputeSlotsInput{
		EventSlug:       r.Event,
		Date:            r.Date,
		VisitorTimezone: r.Timezone,
	}
}

// --- Response DTOs ---

type slotResp struct {
	Time     string `json:"time"`
	Datetime string `json:"datetime"`
}

type listSlotsResp struct {
	Date     string     `json:"date"`
	Timezone string     `json:"timezone"`
	Slots    []slotResp `json:"slots"`
}

func (h *handler) newListSlotsResp(req listSlotsReq, slots []model.TimeSlot) listSlotsResp {
	out := make([]slotResp, len(slots))
	for i, s := range slots {
		out[i] = slotResp{Time: s.Time, Datetime: s.Datetime}
	}
	return listSlotsResp{
		Date:     req.Date,
		Timezone: req.Timezone,
		Slots:    out,
	}
}
