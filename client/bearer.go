package client

import (
	"context"
	"net/http"
)

const contextTokenKey = contextKey("token")

// contextKey is a custom type to be used for storing keys in a [context.Context].
type contextKey string

// WithToken returns a copy of ctx with the session token, which is then sent as a bearer token on requests made with it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextTokenKey, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(contextTokenKey).(string)
	return token
}

type bearerTransport struct {
	next http.RoundTripper
}

// RoundTrip satisfies [http.RoundTripper].
func (b *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := tokenFromContext(req.Context()); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return b.next.RoundTrip(req)
}
