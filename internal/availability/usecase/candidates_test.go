package usecase

import (
	"errors"
	"testing"
	"time"

	"schedlink/internal/availability"
	"schedlink/internal/model"
	"schedlink/pkg/tzdate"
)

func testEngine() *implUseCase {
	return &implUseCase{tz: tzdate.NewConverter(), now: time.Now}
}

func TestGenerateCandidatesCadence(t *testing.T) {
	uc := testEngine()

	// 09:00-17:00, 30-minute slots with a 10-minute buffer: starts every 40
	// minutes, last one at 16:30 (ends exactly at 17:00).
	window := model.DayWindow{Start: "09:00", End: "17:00"}
	candidates, err := uc.generateCandidates(window, "2026-02-16", "UTC", 30, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(candidates) != 12 {
		t.Fatalf("expected 12 candidates, got %d", len(candidates))
	}
	first := candidates[0]
	if got := first.Format("15:04"); got != "09:00" {
		t.Errorf("first candidate at %s, want 09:00", got)
	}
	if got := candidates[1].Format("15:04"); got != "09:40" {
		t.Errorf("second candidate at %s, want 09:40", got)
	}
	last := candidates[len(candidates)-1]
	if got := last.Format("15:04"); got != "16:20" {
		t.Errorf("last candidate at %s, want 16:20", got)
	}
}

func TestGenerateCandidatesLastSlotFits(t *testing.T) {
	uc := testEngine()
	window := model.DayWindow{Start: "09:00", End: "17:00"}

	// No buffer: the 16:30 start ends exactly at the window end and is kept.
	candidates, err := uc.generateCandidates(window, "2026-02-16", "UTC", 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := candidates[len(candidates)-1]
	if got := last.Format("15:04"); got != "16:30" {
		t.Errorf("last candidate at %s, want 16:30", got)
	}

	// Every slot end must stay inside the window.
	dayEnd, err := uc.tz.ToInstant("2026-02-16", "17:00", "UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range candidates {
		if c.Add(30 * time.Minute).After(dayEnd) {
			t.Errorf("candidate %s overruns the window", c.Format("15:04"))
		}
	}
}

func TestGenerateCandidatesWindowTooShort(t *testing.T) {
	uc := testEngine()
	window := model.DayWindow{Start: "09:00", End: "09:15"}

	candidates, err := uc.generateCandidates(window, "2026-02-16", "UTC", 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}

func TestGenerateCandidatesInvalidDuration(t *testing.T) {
	uc := testEngine()
	window := model.DayWindow{Start: "09:00", End: "17:00"}

	for _, d := range []int{0, -15} {
		_, err := uc.generateCandidates(window, "2026-02-16", "UTC", d, 0)
		if !errors.Is(err, availability.ErrInvalidDuration) {
			t.Errorf("duration %d: got %v, want ErrInvalidDuration", d, err)
		}
	}
}

func TestGenerateCandidatesOwnerTimezone(t *testing.T) {
	uc := testEngine()
	window := model.DayWindow{Start: "09:00", End: "10:00"}

	// 2026-02-16 is winter: New York is UTC-5, so 09:00 local is 14:00Z.
	candidates, err := uc.generateCandidates(window, "2026-02-16", "America/New_York", 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) == 0 {
		t.Fatal("expected candidates")
	}
	if got := candidates[0].UTC().Format("15:04"); got != "14:00" {
		t.Errorf("first candidate at %sZ, want 14:00Z", got)
	}
}
