package auth

import (
	"context"

	"resort-cms/internal/domain/entity"
)

// ctxKey is a custom type for context keys to avoid collisions.
type ctxKey string

const (
	ctxIdentity ctxKey = "identity"
	ctxActor    ctxKey = "actor"
)

// WithIdentity adds the verified caller identity to the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

// IdentityFromContext retrieves the verified caller identity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(Identity)
	return id, ok
}

// WithActor adds the resolved allow-list actor to the context.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, ctxActor, actor)
}

// ActorFromContext retrieves the resolved allow-list actor. Handlers behind
// RequireAuthor can rely on ok being true.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(ctxActor).(entity.Actor)
	return actor, ok
}
