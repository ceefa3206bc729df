package tzdate

import (
	"fmt"
	"regexp"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Wire formats for dates and wall-clock times.
const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"

	// ISOOffsetFormat always renders a numeric UTC offset, never "Z".
	ISOOffsetFormat = "2006-01-02T15:04:05-07:00"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// locationCacheSize bounds the zone handle cache. There are ~600 IANA zones;
// a booking page only ever sees a fraction of them.
const locationCacheSize = 128

// Converter resolves IANA timezones and converts between wall-clock
// representations and absolute instants. All operations are pure; the only
// state is a cache of immutable *time.Location handles.
type Converter struct {
	locations *lru.Cache[string, *time.Location]
}

// NewConverter creates a Converter with an empty location cache.
func NewConverter() *Converter {
	cache, _ := lru.New[string, *time.Location](locationCacheSize)
	return &Converter{locations: cache}
}

// Location resolves an IANA timezone identifier.
// Returns ErrInvalidTimezone for empty or unrecognized identifiers.
func (c *Converter) Location(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimezone)
	}
	if loc, ok := c.locations.Get(tz); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	c.locations.Add(tz, loc)
	return loc, nil
}

// ToInstant interprets date ("YYYY-MM-DD") and clock ("HH:MM") as a wall-clock
// time local to tz and returns the corresponding absolute instant. The zone's
// offset rules for that specific date apply, so DST transitions resolve
// correctly.
func (c *Converter) ToInstant(date, clock, tz string) (time.Time, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return time.Time{}, err
	}

	d, err := parseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// LocalTime formats an instant as 24-hour "HH:MM" wall-clock time in tz.
func (c *Converter) LocalTime(instant time.Time, tz string) (string, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return "", err
	}
	return instant.In(loc).Format(ClockFormat), nil
}

// ISOWithOffset formats an instant as ISO-8601 with the zone's UTC offset at
// that instant. UTC renders as "+00:00", not "Z".
func (c *Converter) ISOWithOffset(instant time.Time, tz string) (string, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return "", err
	}
	return instant.In(loc).Format(ISOOffsetFormat), nil
}

// DayOfWeek returns the weekday (0=Sunday..6=Saturday) of a calendar date as
// understood in tz. A representative midday instant is used so the answer is
// not distorted by midnight-boundary conversion.
func (c *Converter) DayOfWeek(date, tz string) (int, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return 0, err
	}
	d, err := parseDate(date)
	if err != nil {
		return 0, err
	}
	midday := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
	return int(midday.Weekday()), nil
}

// parseDate validates and parses a strict "YYYY-MM-DD" string.
// The regexp guards the shape; time.Parse rejects out-of-range components
// like "2026-02-30".
func parseDate(date string) (time.Time, error) {
	if !dateRe.MatchString(date) {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidFormat, date)
	}
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrInvalidFormat, date, err)
	}
	return d, nil
}

// parseClock validates and parses a strict "HH:MM" string.
func parseClock(clock string) (time.Time, error) {
	if !clockRe.MatchString(clock) {
		return time.Time{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidFormat, clock)
	}
	t, err := time.Parse(ClockFormat, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q: %v", ErrInvalidFormat, clock, err)
	}
	return t, nil
}
