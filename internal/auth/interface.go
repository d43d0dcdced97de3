package auth

import (
	"context"

	"ai-scheduler/internal/model"
)

// UseCase runs the Google sign-in flow and resolves sessions to users.
type UseCase interface {
	// Start issues a single-use state and returns the consent page URL.
	Start(ctx context.Context) (StartOutput, error)

	// Callback verifies the state, exchanges the code and stores the user with their encrypted token.
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)

	// Me returns the account behind the session scope.
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
