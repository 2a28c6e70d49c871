// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dalemusser/redlight/internal/app/system/eventstatus"
)

// Event is a published sporting event with a capacity limit.
//
// ParticipantIDs is a set (enforced with $addToSet / $ne filters) and its
// length never exceeds MaxParticipants: admission happens through a
// conditional update that checks capacity and status in the same document
// write, so concurrent registrations cannot overbook a single event.
//
// Deleted is a soft-delete flag. Deleted events are invisible to list and
// registration operations and their status is frozen; the documents are
// kept for audit.
type Event struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location"`
	SportType   string             `bson:"sport_type" json:"sport_type"`
	SportTypeCI string             `bson:"sport_type_ci" json:"sport_type_ci"` // folded, for filtering

	ScheduledAt     time.Time          `bson:"scheduled_at" json:"scheduled_at"`
	MaxParticipants int                `bson:"max_participants" json:"max_participants"`
	Status          eventstatus.Status `bson:"status" json:"status"`
	Deleted         bool               `bson:"deleted" json:"deleted"`

	CreatorID      primitive.ObjectID   `bson:"creator_id" json:"creator_id"` // immutable after creation
	ParticipantIDs []primitive.ObjectID `bson:"participant_ids" json:"participant_ids"`
	PhotoRefs      []string             `bson:"photo_refs,omitempty" json:"photo_refs,omitempty"` // opaque storage paths

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasParticipant reports whether the given user is in the participant set.
func (e Event) HasParticipant(userID primitive.ObjectID) bool {
	for _, id := range e.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Full reports whether the event has reached its capacity limit.
func (e Event) Full() bool {
	return len(e.ParticipantIDs) >= e.MaxParticipants
}
