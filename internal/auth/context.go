package auth

import "context"

type contextKey string

const userContextKey contextKey = "leadgrid:user"

// WithUser stores a User in the context.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext retrieves the User from the context. Returns nil for
// unauthenticated requests.
func FromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userContextKey).(*User)
	return user
}
