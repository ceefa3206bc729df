package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"schedlink/internal/availability"
	"schedlink/internal/availability/usecase"
	"schedlink/internal/model"
	"schedlink/pkg/gcalendar"
	"schedlink/pkg/ownertoken"
	"schedlink/pkg/tzdate"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubReader struct {
	cfg model.SchedConfig
	err error
}

func (s *stubReader) Get(ctx context.Context) (model.SchedConfig, error) {
	return s.cfg, s.err
}

type stubAccessor struct {
	token string
	err   error
}

func (s *stubAccessor) AccessToken(ctx context.Context) (string, error) {
	return s.token, s.err
}

type stubCalendar struct {
	busy     []gcalendar.BusyInterval
	err      error
	requests []gcalendar.FreeBusyRequest
}

func (s *stubCalendar) FreeBusy(ctx context.Context, accessToken string, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyInterval, error) {
	s.requests = append(s.requests, req)
	return s.busy, s.err
}

func (s *stubCalendar) CreateEvent(ctx context.Context, accessToken string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	return nil, errors.New("not implemented")
}

// testConfig books 30-minute meetings 09:00-17:00 UTC on weekdays with no
// buffer and two hours of minimum notice.
func testConfig() model.SchedConfig {
	return model.SchedConfig{
		Events: []model.EventType{
			{Slug: "meeting", Title: "Meeting", Duration: 30},
		},
		Availability: model.AvailabilityPolicy{
			Timezone: "UTC",
			Schedule: model.WeeklySchedule{
				1: {Start: "09:00", End: "17:00"},
				2: {Start: "09:00", End: "17:00"},
				3: {Start: "09:00", End: "17:00"},
				4: {Start: "09:00", End: "17:00"},
				5: {Start: "09:00", End: "17:00"},
			},
			BufferMinutes:    0,
			MaxDaysInAdvance: 30,
			MinNoticeMinutes: 120,
		},
		Owner: model.Owner{Name: "Avery", CalendarID: "primary"},
	}
}

func mustUTC(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return ts
}

func newEngine(cfg model.SchedConfig, cal gcalendar.API, now time.Time) availability.UseCase {
	return usecase.New(
		&mockLogger{},
		&stubReader{cfg: cfg},
		&stubAccessor{token: "tok"},
		cal,
		tzdate.NewConverter(),
	).WithClock(func() time.Time { return now })
}

func slotTimes(slots []model.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestComputeSlotsMinNotice(t *testing.T) {
	ctx := context.Background()
	// 2026-02-16 is a Monday. With now at 08:00Z and two hours of notice,
	// everything before 10:00 is gone.
	now := mustUTC(t, "2026-02-16T08:00:00Z")
	engine := newEngine(testConfig(), &stubCalendar{}, now)

	out, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
		EventSlug:       "meeting",
		Date:            "2026-02-16",
		VisitorTimezone: "UTC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	times := slotTimes(out.Slots)
	if len(times) == 0 {
		t.Fatal("expected slots")
	}
	if times[0] != "10:00" {
		t.Errorf("first slot %s, want 10:00", times[0])
	}
	for _, ts := range times {
		if ts < "10:00" {
			t.Errorf("slot %s violates the two-hour notice", ts)
		}
	}
}

func TestComputeSlotsBusyFiltering(t *testing.T) {
	ctx := context.Background()
	now := mustUTC(t, "2026-02-15T08:00:00Z")
	cal := &stubCalendar{busy: []gcalendar.BusyInterval{
		{Start: mustUTC(t, "2026-02-16T10:00:00Z"), End: mustUTC(t, "2026-02-16T10:30:00Z")},
	}}
	engine := newEngine(testConfig(), cal, now)

	out, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
		EventSlug:       "meeting",
		Date:            "2026-02-16",
		VisitorTimezone: "UTC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, ts := range slotTimes(out.Slots) {
		if ts == "10:00" {
			t.Error("10:00 slot should be filtered by the busy interval")
		}
	}
	// Adjacent slots survive: busy intervals are closed-open.
	times := slotTimes(out.Slots)
	var has0930, has1030 bool
	for _, ts := range times {
		if ts == "09:30" {
			has0930 = true
		}
		if ts == "10:30" {
			has1030 = true
		}
	}
	if !has0930 || !has1030 {
		t.Errorf("back-to-back slots missing, got %v", times)
	}

	if len(cal.requests) != 1 {
		t.Fatalf("expected one free/busy query, got %d", len(cal.requests))
	}
	req := cal.requests[0]
	if req.CalendarID != "primary" {
		t.Errorf("free/busy calendar %q, want primary", req.CalendarID)
	}
	if !req.TimeMin.Equal(mustUTC(t, "2026-02-16T00:00:00Z")) {
		t.Errorf("free/busy window starts at %v", req.TimeMin)
	}
}

func TestComputeSlotsNonWorkingDay(t *testing.T) {
	ctx := context.Background()
	now := mustUTC(t, "2026-02-14T08:00:00Z")
	cal := &stubCalendar{}
	engine := newEngine(testConfig(), cal, now)

	// 2026-02-15 is a Sunday.
	out, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
		EventSlug:       "meeting",
		Date:            "2026-02-15",
		VisitorTimezone: "UTC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Slots == nil || len(out.Slots) != 0 {
		t.Errorf("expected an empty slot list, got %v", out.Slots)
	}
	if len(cal.requests) != 0 {
		t.Error("no free/busy query should be made on a non-working day")
	}
}

func TestComputeSlotsVisitorTimezoneProjection(t *testing.T) {
	ctx := context.Background()
	now := mustUTC(t, "2026-02-15T08:00:00Z")
	engine := newEngine(testConfig(), &stubCalendar{}, now)

	// Owner works 09:00-17:00 UTC; New York is UTC-5 in February, so the
	// first slot shows as 04:00 with a -05:00 offset.
	out, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
		EventSlug:       "meeting",
		Date:            "2026-02-16",
		VisitorTimezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Slots) == 0 {
		t.Fatal("expected slots")
	}
	first := out.Slots[0]
	if first.Time != "04:00" {
		t.Errorf("first slot time %s, want 04:00", first.Time)
	}
	if !strings.HasSuffix(first.Datetime, "-05:00") {
		t.Errorf("datetime %s should carry the -05:00 offset", first.Datetime)
	}
}

func TestComputeSlotsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := mustUTC(t, "2026-02-15T08:00:00Z")
	cal := &stubCalendar{busy: []gcalendar.BusyInterval{
		{Start: mustUTC(t, "2026-02-16T13:00:00Z"), End: mustUTC(t, "2026-02-16T14:00:00Z")},
	}}
	engine := newEngine(testConfig(), cal, now)

	input := availability.ComputeSlotsInput{
		EventSlug:       "meeting",
		Date:            "2026-02-16",
		VisitorTimezone: "Europe/Berlin",
	}
	first, err := engine.ComputeSlots(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.ComputeSlots(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Slots) != len(second.Slots) {
		t.Fatalf("slot counts differ: %d vs %d", len(first.Slots), len(second.Slots))
	}
	for i := range first.Slots {
		if first.Slots[i] != second.Slots[i] {
			t.Errorf("slot %d differs: %+v vs %+v", i, first.Slots[i], second.Slots[i])
		}
	}
}

func TestComputeSlotsUnknownEvent(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(testConfig(), &stubCalendar{}, mustUTC(t, "2026-02-15T08:00:00Z"))

	_, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
		EventSlug:       "nope",
		Date:            "2026-02-16",
		VisitorTimezone: "UTC",
	})
	if !errors.Is(err, availability.ErrEventTypeNotFound) {
		t.Errorf("got %v, want ErrEventTypeNotFound", err)
	}
}

func TestComputeSlotsDateBeyondHorizon(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(testConfig(), &stubCalendar{}, mustUTC(t, "2026-02-15T08:00:00Z"))

	_, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
		EventSlug:       "meeting",
		Date:            "2026-06-01",
		VisitorTimezone: "UTC",
	})
	if !errors.Is(err, availability.ErrDateOutOfRange) {
		t.Errorf("got %v, want ErrDateOutOfRange", err)
	}
}

func TestComputeSlotsInvalidInputs(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(testConfig(), &stubCalendar{}, mustUTC(t, "2026-02-15T08:00:00Z"))

	t.Run("bad timezone", func(t *testing.T) {
		_, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
			EventSlug:       "meeting",
			Date:            "2026-02-16",
			VisitorTimezone: "Mars/Olympus",
		})
		if !errors.Is(err, tzdate.ErrInvalidTimezone) {
			t.Errorf("got %v, want ErrInvalidTimezone", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
			EventSlug:       "meeting",
			Date:            "16/02/2026",
			VisitorTimezone: "UTC",
		})
		if err == nil {
			t.Error("expected an error for a malformed date")
		}
	})
}

func TestComputeSlotsNotConnected(t *testing.T) {
	ctx := context.Background()
	engine := usecase.New(
		&mockLogger{},
		&stubReader{cfg: testConfig()},
		&stubAccessor{err: ownertoken.ErrNotConnected},
		&stubCalendar{},
		tzdate.NewConverter(),
	).WithClock(func() time.Time { return mustUTC(t, "2026-02-15T08:00:00Z") })

	_, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
		EventSlug:       "meeting",
		Date:            "2026-02-16",
		VisitorTimezone: "UTC",
	})
	if !errors.Is(err, ownertoken.ErrNotConnected) {
		t.Errorf("got %v, want ErrNotConnected", err)
	}
}

func TestComputeSlotsUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	cal := &stubCalendar{err: errors.New("rate limited")}
	engine := newEngine(testConfig(), cal, mustUTC(t, "2026-02-15T08:00:00Z"))

	_, err := engine.ComputeSlots(ctx, availability.ComputeSlotsInput{
		EventSlug:       "meeting",
		Date:            "2026-02-16",
		VisitorTimezone: "UTC",
	})
	if !errors.Is(err, availability.ErrUpstreamUnavailable) {
		t.Errorf("got %v, want ErrUpstreamUnavailable", err)
	}
}
