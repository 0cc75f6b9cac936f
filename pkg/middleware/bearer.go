package middleware

import "context"

type bearerKey struct{}

// WithBearerToken attaches the caller's access token so outbound calls made
// on the caller's behalf can forward it.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

func BearerToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerKey{}).(string)
	return token, ok && token != ""
}
