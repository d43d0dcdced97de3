package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromTokenSource creates a Calendar client acting as the user
// behind ts.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event, inviting the attendees
// and requesting a Meet conference when asked to.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	attendees := uniqueEmails(req.Attendees)

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

	for _, email := range attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	if req.CreateMeet {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		}
	}

	if req.ReminderMinutes > 0 {
		event.Reminders = &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: int64(req.ReminderMinutes)},
			},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	call := c.service.Events.Insert(calendarID, event).Context(ctx)
	if req.CreateMeet {
		call = call.ConferenceDataVersion(1)
	}
	if req.SendUpdates != "" {
		call = call.SendUpdates(req.SendUpdates)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		MeetLink:  meetLink(created),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Attendees: attendees,
	}, nil
}

// meetLink prefers the video entry point of the conference, then the
// legacy hangout link.
func meetLink(e *calendar.Event) string {
	if e.ConferenceData != nil {
		for _, ep := range e.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" && ep.Uri != "" {
				return ep.Uri
			}
		}
	}
	return e.HangoutLink
}

// uniqueEmails drops case-insensitive duplicates, keeping first occurrences.
func uniqueEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, email := range emails {
		key := strings.ToLower(email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, email)
	}
	return out
}
