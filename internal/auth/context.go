package auth

import "context"

type tokenKey struct{}

// WithToken stores the raw bearer token supplied by the caller.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the raw token, or "" for anonymous requests.
func TokenFromContext(ctx context.Context) string {
	v, _ := ctx.Value(tokenKey{}).(string)
	return v
}
