// internal/app/policy/eventpolicy/eventpolicy.go

// Package eventpolicy provides authorization policies for event
// management.
//
// Authorization rules:
//   - Admins can mutate any event
//   - The event's creator can mutate their own events
//   - Any signed-in participant can register themselves and withdraw
//     themselves
//   - Other mutations (edit, cancel, complete, delete, managing other
//     people's registrations) require creator or admin
package eventpolicy

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/system/authz"
	"github.com/dalemusser/redlight/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanMutate reports whether the actor may change the given event's
// details, status, deletion state, or other users' registrations.
func CanMutate(actorID primitive.ObjectID, role string, ev models.Event) bool {
	if role == authz.RoleAdmin {
		return true
	}
	return actorID != primitive.NilObjectID && actorID == ev.CreatorID
}

// CanMutateRequest is CanMutate keyed off the request's signed-in user.
func CanMutateRequest(r *http.Request, ev models.Event) bool {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok {
		return false
	}
	return CanMutate(uid, role, ev)
}

// CanRemoveParticipant reports whether the actor may remove the target
// user from the event. Users may always withdraw themselves; removing
// anyone else requires mutate rights.
func CanRemoveParticipant(actorID primitive.ObjectID, role string, ev models.Event, targetID primitive.ObjectID) bool {
	if actorID != primitive.NilObjectID && actorID == targetID {
		return true
	}
	return CanMutate(actorID, role, ev)
}
