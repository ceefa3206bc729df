package model

import (
	"fmt"
	"net/url"
	"regexp"
	"time"
)

var (
	slugRe   = regexp.MustCompile(`^[a-z0-9-]+$`)
	clockRe  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	hexRe    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Validate checks every boundary invariant of the config blob. The
// availability engine assumes a validated config and performs none of these
// checks itself.
func (c SchedConfig) Validate() error {
	if len(c.Events) < 1 || len(c.Events) > 20 {
		return fmt.Errorf("events: need between 1 and 20, got %d", len(c.Events))
	}
	seen := make(map[string]bool, len(c.Events))
	for i, e := range c.Events {
		if err := e.validate(); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
		if seen[e.Slug] {
			return fmt.Errorf("events[%d]: duplicate slug %q", i, e.Slug)
		}
		seen[e.Slug] = true
	}

	if err := c.Availability.validate(); err != nil {
		return fmt.Errorf("availability: %w", err)
	}

	if c.Owner.Name == "" || len(c.Owner.Name) > 100 {
		return fmt.Errorf("owner: name must be 1-100 characters")
	}
	if c.Owner.CalendarID == "" {
		return fmt.Errorf("owner: calendarId is required")
	}

	if !hexRe.MatchString(c.Branding.AccentColor) {
		return fmt.Errorf("branding: accentColor must be a hex color, got %q", c.Branding.AccentColor)
	}
	if c.Branding.LogoURL != nil {
		u, err := url.Parse(*c.Branding.LogoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("branding: logoUrl must be an http(s) URL")
		}
	}

	return nil
}

func (e EventType) validate() error {
	if !slugRe.MatchString(e.Slug) {
		return fmt.Errorf("slug must be lowercase letters, numbers, and hyphens, got %q", e.Slug)
	}
	if e.Title == "" || len(e.Title) > 100 {
		return fmt.Errorf("title must be 1-100 characters")
	}
	if len(e.Description) > 500 {
		return fmt.Errorf("description must be at most 500 characters")
	}
	if e.Duration < 5 || e.Duration > 480 {
		return fmt.Errorf("duration must be 5-480 minutes, got %d", e.Duration)
	}
	if len(e.Location) > 200 {
		return fmt.Errorf("location must be at most 200 characters")
	}
	return nil
}

func (p AvailabilityPolicy) validate() error {
	if p.Timezone == "" {
		return fmt.Errorf("timezone is required")
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return fmt.Errorf("timezone %q is not a recognized IANA zone", p.Timezone)
	}

	for day, window := range p.Schedule {
		if day < 0 || day > 6 {
			return fmt.Errorf("schedule: weekday %d out of range 0-6", day)
		}
		if !clockRe.MatchString(window.Start) || !clockRe.MatchString(window.End) {
			return fmt.Errorf("schedule[%d]: start and end must be HH:MM", day)
		}
		// Lexicographic comparison is correct for zero-padded HH:MM.
		if window.Start >= window.End {
			return fmt.Errorf("schedule[%d]: start %s must be before end %s", day, window.Start, window.End)
		}
	}

	if p.BufferMinutes < 0 || p.BufferMinutes > 120 {
		return fmt.Errorf("bufferMinutes must be 0-120, got %d", p.BufferMinutes)
	}
	if p.MaxDaysInAdvance < 1 || p.MaxDaysInAdvance > 365 {
		return fmt.Errorf("maxDaysInAdvance must be 1-365, got %d", p.MaxDaysInAdvance)
	}
	if p.MinNoticeMinutes < 0 || p.MinNoticeMinutes > 10080 {
		return fmt.Errorf("minNoticeMinutes must be 0-10080, got %d", p.MinNoticeMinutes)
	}
	return nil
}
