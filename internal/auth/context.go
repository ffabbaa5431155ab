package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const contextKeyActor contextKey = "auth.actor_id"

// WithActor stores the acting user's id in the context.
func WithActor(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKeyActor, actorID)
}

// ActorFromContext returns the acting user's id, invalid when the
// request carried no identity.
func ActorFromContext(ctx context.Context) uuid.NullUUID {
	if id, ok := ctx.Value(contextKeyActor).(uuid.UUID); ok {
		return uuid.NullUUID{UUID: id, Valid: true}
	}

	return uuid.NullUUID{}
}
