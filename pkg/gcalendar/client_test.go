package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"schedlink/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestProvider(ts *httptest.Server) *gcalendar.Provider {
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	return gcalendar.NewProvider(gcalendar.WithHTTPClient(tsClient))
}

func TestFreeBusy(t *testing.T) {
	t.Run("returns sorted busy intervals", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/freeBusy" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"calendars": {
						"primary": {
							"busy": [
								{"start": "2026-02-16T15:00:00Z", "end": "2026-02-16T15:30:00Z"},
								{"start": "2026-02-16T13:00:00Z", "end": "2026-02-16T14:00:00Z"}
							]
						}
					}
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		provider := newTestProvider(ts)
		busy, err := provider.FreeBusy(context.Background(), "token", gcalendar.FreeBusyRequest{
			CalendarID: "primary",
			TimeMin:    time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
			TimeMax:    time.Date(2026, 2, 16, 23, 59, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(busy) != 2 {
			t.Fatalf("expected 2 busy intervals, got %d", len(busy))
		}
		if !busy[0].Start.Before(busy[1].Start) {
			t.Error("expected intervals sorted by start")
		}
		if busy[0].Start.UTC().Hour() != 13 {
			t.Errorf("unexpected first interval: %v", busy[0])
		}
	})

	t.Run("empty calendar", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"calendars": {"primary": {"busy": []}}}`))
		}))
		defer ts.Close()

		provider := newTestProvider(ts)
		busy, err := provider.FreeBusy(context.Background(), "token", gcalendar.FreeBusyRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(busy) != 0 {
			t.Errorf("expected no busy intervals, got %d", len(busy))
		}
	})

	t.Run("malformed period", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"calendars": {"primary": {"busy": [{"start": "not-a-time", "end": ""}]}}}`))
		}))
		defer ts.Close()

		provider := newTestProvider(ts)
		_, err := provider.FreeBusy(context.Background(), "token", gcalendar.FreeBusyRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour),
		})
		if err == nil {
			t.Error("expected error for malformed busy period")
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		provider := newTestProvider(ts)
		_, err := provider.FreeBusy(context.Background(), "token", gcalendar.FreeBusyRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour),
		})
		if err == nil {
			t.Error("expected error for upstream 500")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("inserts event with attendee", func(t *testing.T) {
		var gotBody map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		provider := newTestProvider(ts)
		start := time.Date(2026, 2, 16, 14, 0, 0, 0, time.UTC)
		event, err := provider.CreateEvent(context.Background(), "token", gcalendar.CreateEventRequest{
			CalendarID:    "primary",
			Summary:       "30 Min Meeting with Alice",
			Description:   "Name: Alice",
			StartTime:     start,
			EndTime:       start.Add(30 * time.Minute),
			Timezone:      "America/New_York",
			AttendeeEmail: "alice@example.com",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
		if event.ID != "event-123" {
			t.Errorf("unexpected id: %s", event.ID)
		}

		attendees, ok := gotBody["attendees"].([]any)
		if !ok || len(attendees) != 1 {
			t.Fatalf("expected one attendee in request, got %v", gotBody["attendees"])
		}
		first := attendees[0].(map[string]any)
		if first["email"] != "alice@example.com" {
			t.Errorf("unexpected attendee: %v", first)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		provider := newTestProvider(ts)
		_, err := provider.CreateEvent(context.Background(), "token", gcalendar.CreateEventRequest{
			CalendarID: "primary",
			StartTime:  time.Now(),
			EndTime:    time.Now().Add(time.Hour),
		})
		if err == nil {
			t.Error("expected error for upstream 403")
		}
	})
}
