// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// LocalActor is reported for contexts without an actor, such as CLI and TUI sessions.
const LocalActor = "local"

type actorKey struct{}

// WithActor returns a context naming who performs the operations run under it.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor of ctx, or LocalActor if none is set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return v
	}
	return LocalActor
}
