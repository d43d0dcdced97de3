package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	repo "ai-scheduler/internal/command/repository"
	"ai-scheduler/internal/model"
)

const eventColumns = `id::text, COALESCE(user_id::text, ''), google_event_id, summary, start_time, end_time,
	time_zone, meet_link, html_link, attendees_count, original_command, created_at`

// CreateEvent inserts a ScheduledEvent row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.ScheduledEvent, error) {
	query := `
		INSERT INTO scheduled_events (user_id, google_event_id, summary, start_time, end_time,
			time_zone, meet_link, html_link, attendees_count, original_command, created_at)
		VALUES (NULLIF($1, '')::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING ` + eventColumns

	row := r.pool.QueryRow(ctx, query,
		opt.UserID, opt.GoogleEventID, opt.Summary, opt.StartTime, opt.EndTime,
		opt.TimeZone, opt.MeetLink, opt.HtmlLink, opt.AttendeesCount, opt.OriginalCommand,
	)
	ev, err := scanEvent(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.ScheduledEvent{}, repo.ErrFailedToInsert
	}
	return ev, nil
}

// ListEvents returns up to opt.Limit events, newest first.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.ScheduledEvent, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM scheduled_events %s", eventColumns, mods)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ScheduledEvent, error) {
		return scanEvent(row)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

func scanEvent(row pgx.Row) (model.ScheduledEvent, error) {
	var e model.ScheduledEvent
	err := row.Scan(
		&e.ID, &e.UserID, &e.GoogleEventID, &e.Summary, &e.StartTime, &e.EndTime,
		&e.TimeZone, &e.MeetLink, &e.HtmlLink, &e.AttendeesCount, &e.OriginalCommand, &e.CreatedAt,
	)
	return e, err
}
