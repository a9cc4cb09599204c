package model

import "context"

// AnonymousUserID is used when a request carries no caller identity.
const AnonymousUserID = "anonymous"

// Scope is the caller identity attached to a request. It is taken as given;
// nothing verifies it.
type Scope struct {
	UserID string
}

type scopeCtxKey struct{}

// SetScopeToContext stores scope in ctx.
func SetScopeToContext(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, scope)
}

// GetScopeFromContext returns the scope stored in ctx, or an anonymous one.
func GetScopeFromContext(ctx context.Context) Scope {
	if sc, ok := ctx.Value(scopeCtxKey{}).(Scope); ok && sc.UserID != "" {
		return sc
	}
	return Scope{UserID: AnonymousUserID}
}
