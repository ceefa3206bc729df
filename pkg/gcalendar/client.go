package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// API is the Google Calendar surface the booking flow consumes. The access
// token is passed per call because the owner's token is resolved fresh for
// every request.
type API interface {
	FreeBusy(ctx context.Context, accessToken string, req FreeBusyRequest) ([]BusyInterval, error)
	CreateEvent(ctx context.Context, accessToken string, req CreateEventRequest) (*Event, error)
}

// Provider builds a calendar service per call from a bearer access token.
type Provider struct {
	httpClient *http.Client
}

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient routes all calls through the given client instead of
// authenticating with the access token. Used by tests to point at a local
// server.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *Provider) { p.httpClient = hc }
}

// NewProvider creates a calendar Provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) service(ctx context.Context, accessToken string) (*calendar.Service, error) {
	var opts []option.ClientOption
	if p.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(p.httpClient))
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		opts = append(opts, option.WithTokenSource(ts))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

// FreeBusy queries busy periods for one calendar over [TimeMin, TimeMax].
// Results are sorted by start time.
func (p *Provider) FreeBusy(ctx context.Context, accessToken string, req FreeBusyRequest) ([]BusyInterval, error) {
	svc, err := p.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	resp, err := svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: req.TimeMin.Format(time.RFC3339),
		TimeMax: req.TimeMax.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, nil
	}

	intervals := make([]BusyInterval, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		start, startErr := time.Parse(time.RFC3339, b.Start)
		end, endErr := time.Parse(time.RFC3339, b.End)
		if startErr != nil || endErr != nil {
			return nil, fmt.Errorf("freebusy returned malformed period [%s, %s]", b.Start, b.End)
		}
		intervals = append(intervals, BusyInterval{Start: start, End: end})
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
	return intervals, nil
}

// CreateEvent inserts a new event into the owner's calendar.
func (p *Provider) CreateEvent(ctx context.Context, accessToken string, req CreateEventRequest) (*Event, error) {
	svc, err := p.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if req.AttendeeEmail != "" {
		event.Attendees = []*calendar.EventAttendee{{Email: req.AttendeeEmail}}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}
