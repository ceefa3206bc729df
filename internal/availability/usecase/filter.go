package usecase

import (
	"time"

	"schedlink/pkg/gcalendar"
)

// filterCandidates drops candidates that start before the minimum-notice
// cutoff or overlap a busy interval. Order is preserved.
//
// Overlap uses the closed-open convention [start, end) on both sides: a slot
// ending exactly when a busy interval starts, or starting exactly when one
// ends, is kept. Back-to-back meetings are allowed.
func filterCandidates(candidates []time.Time, duration time.Duration, minNotice time.Time, busy []gcalendar.BusyInterval) []time.Time {
	kept := make([]time.Time, 0, len(candidates))
	for _, slotStart := range candidates {
		if slotStart.Before(minNotice) {
			continue
		}
		if overlapsAny(slotStart, slotStart.Add(duration), busy) {
			continue
		}
		kept = append(kept, slotStart)
	}
	return kept
}

func overlapsAny(start, end time.Time, busy []gcalendar.BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
