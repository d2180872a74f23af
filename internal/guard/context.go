package guard

import (
	"context"

	"eats-backend/internal/app/users"
)

type userKey struct{}

// WithUser stores the user a granted decision resolved.
func WithUser(ctx context.Context, u *users.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the user stored by WithUser, or nil when the
// operation ran without one.
func UserFromContext(ctx context.Context) *users.User {
	u, _ := ctx.Value(userKey{}).(*users.User)
	return u
}
