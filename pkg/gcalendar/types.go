package gcalendar

import (
	"context"
	"time"
)

const (
	DefaultCalendarID      = "primary"
	DefaultReminderMinutes = 5
	SendUpdatesAll         = "all"
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID      string
	Summary         string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	Timezone        string // IANA name, e.g. "America/Los_Angeles"
	Attendees       []string
	CreateMeet      bool
	ReminderMinutes int    // email reminder; 0 keeps the calendar defaults
	SendUpdates     string // "all", "externalOnly" or "none"
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	MeetLink  string
	StartTime time.Time
	EndTime   time.Time
	Attendees []string
}

// EventCreator creates calendar events. *Client implements it.
type EventCreator interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}
