// internal/app/store/registrations/registrationstore.go

// Package registrationstore manages the participant set embedded on
// event documents. Admission is a single conditional update so the
// capacity check and the insert commit together; two racing requests
// for the last slot cannot both succeed.
package registrationstore

import (
	"context"
	"errors"

	"github.com/dalemusser/redlight/internal/app/system/eventstatus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

var (
	// ErrAlreadyRegistered is returned when the user is already in the
	// event's participant set.
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	// ErrEventFull is returned when the participant set has reached the
	// event's capacity.
	ErrEventFull = errors.New("event is at capacity")
	// ErrEventUnavailable is returned when the event is not accepting
	// registrations (completed or cancelled).
	ErrEventUnavailable = errors.New("event is not accepting registrations")
)

// Add admits a user to an event's participant set. The filter requires
// a non-deleted planned event with a free slot that does not already
// hold the user, so the admission either fully commits or not at all.
// On failure the event is re-read once to classify the cause.
func (s *Store) Add(ctx context.Context, eventID, userID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":             eventID,
			"deleted":         false,
			"status":          eventstatus.Planned,
			"participant_ids": bson.M{"$ne": userID},
			"$expr": bson.M{"$lt": bson.A{
				bson.M{"$size": "$participant_ids"},
				"$max_participants",
			}},
		},
		bson.M{"$addToSet": bson.M{"participant_ids": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}
	return s.classifyFailure(ctx, eventID, userID)
}

// classifyFailure determines why an admission filter did not match.
// The classification read is advisory; the admission itself already
// failed atomically.
func (s *Store) classifyFailure(ctx context.Context, eventID, userID primitive.ObjectID) error {
	var ev struct {
		Deleted         bool                 `bson:"deleted"`
		Status          eventstatus.Status   `bson:"status"`
		MaxParticipants int                  `bson:"max_participants"`
		ParticipantIDs  []primitive.ObjectID `bson:"participant_ids"`
	}
	err := s.c.FindOne(ctx, bson.M{"_id": eventID}).Decode(&ev)
	if err != nil {
		return err // mongo.ErrNoDocuments for a missing event
	}
	if ev.Deleted {
		return ErrEventUnavailable
	}
	for _, id := range ev.ParticipantIDs {
		if id == userID {
			return ErrAlreadyRegistered
		}
	}
	if ev.Status != eventstatus.Planned {
		return ErrEventUnavailable
	}
	if len(ev.ParticipantIDs) >= ev.MaxParticipants {
		return ErrEventFull
	}
	// The blocking condition resolved between the update and this read.
	return ErrEventUnavailable
}

// Remove takes a user out of an event's participant set. Removing a
// user who is not registered is a no-op. Returns ErrEventUnavailable
// for a soft-deleted event and mongo.ErrNoDocuments for a missing one.
func (s *Store) Remove(ctx context.Context, eventID, userID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": eventID, "deleted": false},
		bson.M{"$pull": bson.M{"participant_ids": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		var ev struct {
			Deleted bool `bson:"deleted"`
		}
		if err := s.c.FindOne(ctx, bson.M{"_id": eventID}).Decode(&ev); err != nil {
			return err
		}
		if ev.Deleted {
			return ErrEventUnavailable
		}
		return mongo.ErrNoDocuments
	}
	return nil
}
