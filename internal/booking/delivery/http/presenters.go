package http

import (
	"schedlink/internal/booking"
)

// --- Request DTOs ---

type createReq struct {
	Event    string `json:"event"    binding:"required"`
	Date     string `json:"date"     binding:"required"`
	Time     string `json:"time"     binding:"required"`
	Timezone string `json:"timezone" binding:"required"`
	Name     string `json:"name"     binding:"required,min=1,max=200"`
	Email    string `json:"email"    binding:"required,email"`
	Notes    string `json:"notes"    binding:"max=1000"`
}

func (r createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		EventSlug:       r.Event,
		Date:            r.Date,
		Time:            r.Time,
		VisitorTimezone: r.Timezone,
		Name:            r.Name,
		Email:           r.Email,
		Notes:           r.Notes,
	}
}

// --- Response DTOs ---

type createResp struct {
	EventID    string `json:"event_id"`
	HtmlLink   string `json:"html_link"`
	EventTitle string `json:"event_title"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

func (h *handler) newCreateResp(out booking.CreateOutput) createResp {
	return createResp{
		EventID:    out.EventID,
		HtmlLink:   out.HtmlLink,
		EventTitle: out.EventTitle,
		Start:      out.Start,
		End:        out.End,
	}
}
