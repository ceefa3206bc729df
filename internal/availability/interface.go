package availability

import "context"

// UseCase is the availability engine: the single entry point the booking
// page uses to list bookable slots for a date.
type UseCase interface {
	ComputeSlots(ctx context.Context, input ComputeSlotsInput) (ComputeSlotsOutput, error)
}
