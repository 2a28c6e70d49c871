// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/redlight/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a closed set: every authenticated user is either a participant
// or an admin. Authorization decisions switch on this, never on ad-hoc
// string comparisons scattered across handlers.
const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a
// found flag. If no user is present in context or the user ID is malformed,
// it returns "visitor", "", NilObjectID, false. This ensures callers can
// trust that ok=true means a valid, authenticated user with a valid
// ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAdmin
}

// IsParticipant reports whether the current request's user is a participant.
func IsParticipant(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleParticipant
}

// ValidRole reports whether the value names a role in the closed set.
func ValidRole(role string) bool {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleParticipant, RoleAdmin:
		return true
	}
	return false
}
