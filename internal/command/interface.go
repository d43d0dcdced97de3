package command

import (
	"context"

	"ai-scheduler/internal/model"
)

// UseCase turns scheduling commands into parse results and calendar events.
type UseCase interface {
	// Parse runs the command parser. An empty TimeZone uses the configured default.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// ParseICS parses the command and renders it as an iCalendar document.
	ParseICS(ctx context.Context, input ParseInput) (ICSOutput, error)

	// Schedule parses the command, creates the event in the user's Google
	// Calendar and records it.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// History lists recorded events, newest first. An authenticated scope
	// limits the list to that user's events.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
}
