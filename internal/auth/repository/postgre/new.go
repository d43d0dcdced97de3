package postgre

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-scheduler/internal/auth/repository"
	"ai-scheduler/pkg/log"
)

const pgInvalidTextRepresentation = "22P02"

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a new PostgreSQL-backed Repository for the auth domain.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("auth/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/postgre.%s", method)
}

// isInvalidUUID reports whether Postgres rejected a malformed uuid literal.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation
}
