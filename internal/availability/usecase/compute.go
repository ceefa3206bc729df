package usecase

import (
	"context"
	"fmt"
	"time"

	"schedlink/internal/availability"
	"schedlink/internal/model"
	"schedlink/pkg/gcalendar"
)

// ComputeSlots lists the bookable slots for one event type on one date,
// rendered in the visitor's timezone.
//
// Busy intervals are fetched fresh from the calendar on every call; nothing
// here is cached across requests.
func (uc *implUseCase) ComputeSlots(ctx context.Context, input availability.ComputeSlotsInput) (availability.ComputeSlotsOutput, error) {
	var out availability.ComputeSlotsOutput

	// Reject a bad visitor timezone before doing any work.
	if _, err := uc.tz.Location(input.VisitorTimezone); err != nil {
		return out, err
	}

	cfg, err := uc.config.Get(ctx)
	if err != nil {
		return out, err
	}

	event, ok := cfg.FindEvent(input.EventSlug)
	if !ok {
		return out, availability.ErrEventTypeNotFound
	}
	policy := cfg.Availability

	// Also validates the date string.
	dayStart, err := uc.tz.ToInstant(input.Date, "00:00", policy.Timezone)
	if err != nil {
		return out, err
	}

	now := uc.now()
	horizon := now.AddDate(0, 0, policy.MaxDaysInAdvance)
	if dayStart.After(horizon) {
		return out, fmt.Errorf("%w: %s is more than %d days out", availability.ErrDateOutOfRange, input.Date, policy.MaxDaysInAdvance)
	}

	dayOfWeek, err := uc.tz.DayOfWeek(input.Date, policy.Timezone)
	if err != nil {
		return out, err
	}
	window, ok := policy.Schedule[dayOfWeek]
	if !ok {
		// Non-working day: a valid empty result, not an error.
		out.Slots = []model.TimeSlot{}
		return out, nil
	}

	accessToken, err := uc.tokens.AccessToken(ctx)
	if err != nil {
		return out, err
	}

	dayEnd, err := uc.tz.ToInstant(input.Date, "23:59", policy.Timezone)
	if err != nil {
		return out, err
	}

	busy, err := uc.cal.FreeBusy(ctx, accessToken, gcalendar.FreeBusyRequest{
		CalendarID: cfg.Owner.CalendarID,
		TimeMin:    dayStart,
		TimeMax:    dayEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "freebusy query failed: %v", err)
		return out, fmt.Errorf("%w: %v", availability.ErrUpstreamUnavailable, err)
	}

	candidates, err := uc.generateCandidates(window, input.Date, policy.Timezone, event.Duration, policy.BufferMinutes)
	if err != nil {
		return out, err
	}

	duration := time.Duration(event.Duration) * time.Minute
	minNotice := now.Add(time.Duration(policy.MinNoticeMinutes) * time.Minute)
	open := filterCandidates(candidates, duration, minNotice, busy)

	slots, err := uc.formatSlots(open, input.VisitorTimezone)
	if err != nil {
		return out, err
	}

	out.Slots = slots
	return out, nil
}
