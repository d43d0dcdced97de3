package repository

import (
	"context"

	"ai-scheduler/internal/model"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	UpsertUser(ctx context.Context, opt UpsertUserOptions) (model.User, error)
	GetUser(ctx context.Context, opt GetUserOptions) (model.User, error)
}
