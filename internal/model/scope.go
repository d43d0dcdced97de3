package model

import "context"

// Scope identifies the signed-in user of a request.
type Scope struct {
	UserID string
}

// Authenticated reports whether the scope carries a user.
func (sc Scope) Authenticated() bool {
	return sc.UserID != ""
}

type scopeKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext, or an
// anonymous scope.
func GetScopeFromContext(ctx context.Context) Scope {
	sc, _ := ctx.Value(scopeKey{}).(Scope)
	return sc
}
