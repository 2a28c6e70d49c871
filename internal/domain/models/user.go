// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents participants and admins.
//
// NOTE:
//   - Event membership is not embedded on User.
//     Use Event.ParticipantIDs (events collection) to discover a
//     user's events; the event store exposes FindByParticipant.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"name_ci"` // lowercase, diacritics-stripped
	Email  string             `bson:"email" json:"email"`
	Role   string             `bson:"role" json:"role"` // participant | admin

	Age      *int   `bson:"age,omitempty" json:"age,omitempty"`
	PhotoRef string `bson:"photo_ref,omitempty" json:"photo_ref,omitempty"` // opaque storage path

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
