package usecase

import (
	"time"

	"schedlink/internal/availability"
	"schedlink/internal/model"
)

// generateCandidates produces the full candidate grid of slot start instants
// for one day's working window, before any busy or notice filtering.
//
// The step between candidates is duration+buffer (the slot cadence). The last
// candidate is the latest start whose end still fits inside the window, so
// the sequence is strictly increasing and finite: the step is at least the
// (positive) duration.
func (uc *implUseCase) generateCandidates(window model.DayWindow, date, ownerTz string, durationMinutes, bufferMinutes int) ([]time.Time, error) {
	if durationMinutes <= 0 {
		return nil, availability.ErrInvalidDuration
	}

	dayStart, err := uc.tz.ToInstant(date, window.Start, ownerTz)
	if err != nil {
		return nil, err
	}
	dayEnd, err := uc.tz.ToInstant(date, window.End, ownerTz)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := duration + time.Duration(bufferMinutes)*time.Minute

	var candidates []time.Time
	for slotStart := dayStart; !slotStart.Add(duration).After(dayEnd); slotStart = slotStart.Add(step) {
		candidates = append(candidates, slotStart)
	}
	return candidates, nil
}
