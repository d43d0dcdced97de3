package model

import "time"

// ScheduledEvent is a calendar event created from a command.
type ScheduledEvent struct {
	ID              string
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
	CreatedAt       time.Time
}
