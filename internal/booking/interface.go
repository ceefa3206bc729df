package booking

import "context"

// UseCase books a slot into the owner's calendar.
type UseCase interface {
	// Create re-checks the slot against the live calendar and, if still
	// free, creates the event. Returns ErrSlotConflict when someone got
	// there first.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
}
