package usecase

import (
	"time"

	"schedlink/internal/model"
)

// formatSlots projects slot start instants into the visitor's timezone for
// display. One output per input, same order.
func (uc *implUseCase) formatSlots(candidates []time.Time, visitorTz string) ([]model.TimeSlot, error) {
	slots := make([]model.TimeSlot, 0, len(candidates))
	for _, slotStart := range candidates {
		clock, err := uc.tz.LocalTime(slotStart, visitorTz)
		if err != nil {
			return nil, err
		}
		iso, err := uc.tz.ISOWithOffset(slotStart, visitorTz)
		if err != nil {
			return nil, err
		}
		slots = append(slots, model.TimeSlot{Time: clock, Datetime: iso})
	}
	return slots, nil
}
