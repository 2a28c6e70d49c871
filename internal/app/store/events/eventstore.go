// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/dalemusser/redlight/internal/app/system/eventstatus"
	"github.com/dalemusser/redlight/internal/app/system/normalize"
	"github.com/dalemusser/redlight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

var (
	// ErrStatusConflict is returned by SetStatus when the event was not in
	// the expected source status at commit time.
	ErrStatusConflict = errors.New("event status changed concurrently")
	// ErrDeleted is returned when the event exists but has been
	// soft-deleted, so callers can tell it apart from a missing event.
	ErrDeleted = errors.New("event has been deleted")
)

// classifyMiss explains why a deleted:false-filtered operation matched
// nothing: ErrDeleted for a soft-deleted event, mongo.ErrNoDocuments
// for a missing one, nil when the event exists and is live.
func (s *Store) classifyMiss(ctx context.Context, id primitive.ObjectID) error {
	var doc struct {
		Deleted bool `bson:"deleted"`
	}
	err := s.c.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"deleted": 1})).Decode(&doc)
	if err != nil {
		return err
	}
	if doc.Deleted {
		return ErrDeleted
	}
	return nil
}

// GetByID loads a non-deleted event. Returns ErrDeleted for a
// soft-deleted event and mongo.ErrNoDocuments for a missing one.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var ev models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "deleted": false}).Decode(&ev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if miss := s.classifyMiss(ctx, id); miss != nil {
				return models.Event{}, miss
			}
		}
		return models.Event{}, err
	}
	return ev, nil
}

// Create inserts a new planned event with normalized fields.
func (s *Store) Create(ctx context.Context, ev models.Event) (models.Event, error) {
	now := time.Now().UTC()
	ev.ID = primitive.NewObjectID()
	ev.Title = normalize.Text(ev.Title)
	ev.Description = normalize.Text(ev.Description)
	ev.Location = normalize.Text(ev.Location)
	ev.SportType = normalize.Sport(ev.SportType)
	ev.SportTypeCI = text.Fold(ev.SportType)
	ev.Status = eventstatus.Planned
	ev.Deleted = false
	if ev.ParticipantIDs == nil {
		ev.ParticipantIDs = []primitive.ObjectID{}
	}
	ev.CreatedAt = now
	ev.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// DetailsUpdate holds the editable fields of an event. Nil pointers
// leave the stored value unchanged.
type DetailsUpdate struct {
	Title           *string
	Description     *string
	Location        *string
	SportType       *string
	ScheduledAt     *time.Time
	MaxParticipants *int
}

// UpdateDetails applies a partial update to a non-deleted event and
// returns the updated document.
func (s *Store) UpdateDetails(ctx context.Context, id primitive.ObjectID, upd DetailsUpdate) (models.Event, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = normalize.Text(*upd.Title)
	}
	if upd.Description != nil {
		set["description"] = normalize.Text(*upd.Description)
	}
	if upd.Location != nil {
		set["location"] = normalize.Text(*upd.Location)
	}
	if upd.SportType != nil {
		sport := normalize.Sport(*upd.SportType)
		set["sport_type"] = sport
		set["sport_type_ci"] = text.Fold(sport)
	}
	if upd.ScheduledAt != nil {
		set["scheduled_at"] = upd.ScheduledAt.UTC()
	}
	if upd.MaxParticipants != nil {
		set["max_participants"] = *upd.MaxParticipants
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ev models.Event
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "deleted": false},
		bson.M{"$set": set}, opts).Decode(&ev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if miss := s.classifyMiss(ctx, id); miss != nil {
				return models.Event{}, miss
			}
		}
		return models.Event{}, err
	}
	return ev, nil
}

// SetStatus moves an event from one status to another. The source
// status is part of the filter so the transition only commits if the
// event is still in that status. Returns ErrStatusConflict when the
// event exists but was no longer in the source status.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, from, to eventstatus.Status) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "deleted": false, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish missing, deleted, and "wrong status".
		if miss := s.classifyMiss(ctx, id); miss != nil {
			return miss
		}
		return ErrStatusConflict
	}
	return nil
}

// SoftDelete hides an event from all reads. Status and participants are
// preserved as they were. Deleting an already-deleted event returns
// ErrDeleted.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if miss := s.classifyMiss(ctx, id); miss != nil {
			return miss
		}
		return mongo.ErrNoDocuments
	}
	return nil
}

// Filter narrows List results. Zero values mean "no filter".
type Filter struct {
	Sport string    // case-insensitive substring match on sport type
	Date  time.Time // events scheduled on this calendar day (UTC)
}

// List returns non-deleted events matching the filter, ordered by
// scheduled time ascending.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Event, error) {
	q := bson.M{"deleted": false}
	if sport := normalize.QueryParam(f.Sport); sport != "" {
		q["sport_type_ci"] = bson.M{"$regex": regexp.QuoteMeta(text.Fold(sport))}
	}
	if !f.Date.IsZero() {
		day := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, time.UTC)
		q["scheduled_at"] = bson.M{"$gte": day, "$lt": day.Add(24 * time.Hour)}
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Event
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpireStale marks planned events whose scheduled time is at or before
// now as completed. Each event commits independently, so a partial
// failure leaves the rest completed and a later run picks up the
// remainder.
func (s *Store) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	q := bson.M{
		"deleted":      false,
		"status":       eventstatus.Planned,
		"scheduled_at": bson.M{"$lte": now.UTC()},
	}
	cur, err := s.c.Find(ctx, q, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return 0, err
	}
	var ids []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &ids); err != nil {
		return 0, err
	}

	var done int64
	for _, doc := range ids {
		res, err := s.c.UpdateOne(ctx,
			bson.M{"_id": doc.ID, "deleted": false, "status": eventstatus.Planned},
			bson.M{"$set": bson.M{"status": eventstatus.Completed, "updated_at": now.UTC()}})
		if err != nil {
			return done, err
		}
		done += res.ModifiedCount
	}
	return done, nil
}

// AppendPhotoRef records the storage path of an uploaded event photo.
func (s *Store) AppendPhotoRef(ctx context.Context, id primitive.ObjectID, ref string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "deleted": false},
		bson.M{
			"$push": bson.M{"photo_refs": ref},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if miss := s.classifyMiss(ctx, id); miss != nil {
			return miss
		}
		return mongo.ErrNoDocuments
	}
	return nil
}

// DistinctSportTypes returns the distinct sport type values across
// non-deleted events.
func (s *Store) DistinctSportTypes(ctx context.Context) ([]string, error) {
	vals, err := s.c.Distinct(ctx, "sport_type", bson.M{"deleted": false})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if sv, ok := v.(string); ok && sv != "" {
			out = append(out, sv)
		}
	}
	return out, nil
}

// FindByCreator returns the non-deleted events a user created, ordered
// by scheduled time ascending.
func (s *Store) FindByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]models.Event, error) {
	return s.findSorted(ctx, bson.M{"deleted": false, "creator_id": creatorID})
}

// FindByParticipant returns the non-deleted events a user is registered
// for, ordered by scheduled time ascending.
func (s *Store) FindByParticipant(ctx context.Context, userID primitive.ObjectID) ([]models.Event, error) {
	return s.findSorted(ctx, bson.M{"deleted": false, "participant_ids": userID})
}

func (s *Store) findSorted(ctx context.Context, q bson.M) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Event
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
