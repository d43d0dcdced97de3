package repository

import "time"

// CreateEventOptions holds parameters for recording a created calendar event.
type CreateEventOptions struct {
	UserID          string
	GoogleEventID   string
	Summary         string
	StartTime       time.Time
	EndTime         time.Time
	TimeZone        string
	MeetLink        string
	HtmlLink        string
	AttendeesCount  int
	OriginalCommand string
}

// ListEventsOptions holds filter and pagination parameters for listing events.
// An empty UserID lists every user's events.
type ListEventsOptions struct {
	UserID string
	Limit  int
}
