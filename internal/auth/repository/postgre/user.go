package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	repo "ai-scheduler/internal/auth/repository"
	"ai-scheduler/internal/model"
)

const userColumns = `id::text, email, refresh_token_encrypted, is_active, created_at, updated_at`

// UpsertUser inserts a user or refreshes the stored token of an existing one.
func (r *implRepository) UpsertUser(ctx context.Context, opt repo.UpsertUserOptions) (model.User, error) {
	query := `
		INSERT INTO users (email, refresh_token_encrypted, is_active, created_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET refresh_token_encrypted = EXCLUDED.refresh_token_encrypted,
		    is_active = TRUE,
		    updated_at = NOW()
		RETURNING ` + userColumns

	user, err := scanUser(r.pool.QueryRow(ctx, query, opt.Email, opt.RefreshTokenEncrypted))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertUser"), err)
		return model.User{}, repo.ErrFailedToUpsert
	}
	return user, nil
}

// GetUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetUser(ctx context.Context, opt repo.GetUserOptions) (model.User, error) {
	mods, args := r.buildGetQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return user, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.RefreshTokenEncrypted, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
