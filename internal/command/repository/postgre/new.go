package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ai-scheduler/internal/command/repository"
	"ai-scheduler/pkg/log"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a new PostgreSQL-backed Repository for the command domain.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("command/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("command/repository/postgre.%s", method)
}
