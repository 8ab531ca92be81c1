package userctx

import (
	"context"

	"github.com/tradeverity/governance-core/models"
)

// Context key type
type contextKey string

const actorKey contextKey = "actor"

// SetActor adds the authenticated admin actor to the request context
func SetActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the admin actor from the request context. The zero
// Actor is returned for unauthenticated contexts; callers relying on actor
// identity validate it downstream.
func GetActor(ctx context.Context) models.Actor {
	if actor, ok := ctx.Value(actorKey).(models.Actor); ok {
		return actor
	}
	return models.Actor{}
}
