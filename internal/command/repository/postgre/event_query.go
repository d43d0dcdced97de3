package postgre

import (
	"fmt"

	repo "ai-scheduler/internal/command/repository"
)

// buildListQuery builds the WHERE/ORDER/LIMIT tail + args for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var args []any
	where := ""
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		where = fmt.Sprintf("WHERE user_id = $%d::uuid ", len(args))
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 10
	}
	args = append(args, limit)
	return fmt.Sprintf("%sORDER BY created_at DESC, id DESC LIMIT $%d", where, len(args)), args
}
