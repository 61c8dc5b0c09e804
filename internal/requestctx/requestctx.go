// Package requestctx carries the per-request id assigned by the
// middleware so handlers and the response envelope can echo it.
package requestctx

import "context"

type key struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

// RequestID returns the id for the current request, or "" when the
// context never passed through the middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(key{}).(string)
	return id
}
