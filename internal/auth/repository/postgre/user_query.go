package postgre

import (
	"fmt"
	"strings"

	repo "ai-scheduler/internal/auth/repository"
)

// buildGetQuery builds WHERE clause + args for GetUser.
func (r *implRepository) buildGetQuery(opt repo.GetUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
	}

	// Without a filter nothing matches rather than the first row.
	if len(conditions) == 0 {
		return "FALSE", args
	}
	return strings.Join(conditions, " AND "), args
}
