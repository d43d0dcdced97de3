package repository

import (
	"context"

	"ai-scheduler/internal/model"
)

// Repository is the composed interface for the command domain data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the ScheduledEvent entity.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.ScheduledEvent, error)
	// ListEvents returns events newest first.
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.ScheduledEvent, error)
}
