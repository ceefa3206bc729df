package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schedlink/internal/booking"
	"schedlink/pkg/gcalendar"
)

// Create books a slot. The slot is re-checked against the live calendar
// immediately before the event is created, so a visitor holding a stale
// availability listing gets a conflict instead of a double booking.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
	var out booking.CreateOutput

	cfg, err := uc.config.Get(ctx)
	if err != nil {
		return out, err
	}

	event, ok := cfg.FindEvent(input.EventSlug)
	if !ok {
		return out, booking.ErrEventTypeNotFound
	}

	// The visitor picked the slot in their own timezone; resolve it back to
	// the absolute instant. Also validates the date and time strings.
	start, err := uc.tz.ToInstant(input.Date, input.Time, input.VisitorTimezone)
	if err != nil {
		return out, err
	}
	end := start.Add(time.Duration(event.Duration) * time.Minute)

	accessToken, err := uc.tokens.AccessToken(ctx)
	if err != nil {
		return out, err
	}

	busy, err := uc.cal.FreeBusy(ctx, accessToken, gcalendar.FreeBusyRequest{
		CalendarID: cfg.Owner.CalendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		uc.l.Errorf(ctx, "pre-booking freebusy check failed: %v", err)
		return out, fmt.Errorf("%w: %v", booking.ErrUpstreamUnavailable, err)
	}
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return out, booking.ErrSlotConflict
		}
	}

	created, err := uc.cal.CreateEvent(ctx, accessToken, gcalendar.CreateEventRequest{
		CalendarID:    cfg.Owner.CalendarID,
		Summary:       fmt.Sprintf("%s with %s", event.Title, input.Name),
		Description:   buildDescription(input),
		StartTime:     start,
		EndTime:       end,
		Timezone:      input.VisitorTimezone,
		AttendeeEmail: input.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event creation failed: %v", err)
		return out, fmt.Errorf("%w: %v", booking.ErrUpstreamUnavailable, err)
	}

	startISO, err := uc.tz.ISOWithOffset(start, input.VisitorTimezone)
	if err != nil {
		return out, err
	}
	endISO, err := uc.tz.ISOWithOffset(end, input.VisitorTimezone)
	if err != nil {
		return out, err
	}

	uc.l.Infof(ctx, "booked %s at %s for %s", input.EventSlug, startISO, input.Email)
	out = booking.CreateOutput{
		EventID:    created.ID,
		HtmlLink:   created.HtmlLink,
		EventTitle: event.Title,
		Start:      startISO,
		End:        endISO,
	}
	return out, nil
}

func buildDescription(input booking.CreateInput) string {
	var b strings.Builder
	b.WriteString("Booked via Schedlink\n\n")
	fmt.Fprintf(&b, "Name: %s\n", input.Name)
	fmt.Fprintf(&b, "Email: %s\n", input.Email)
	if input.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", input.Notes)
	}
	return b.String()
}
