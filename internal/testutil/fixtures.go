package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/redlight/internal/app/system/eventstatus"
	"github.com/dalemusser/redlight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a participant with the given name and email.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	return f.createUser(ctx, name, email, "participant")
}

// CreateAdmin creates an admin user with the given name and email.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	return f.createUser(ctx, name, email, "admin")
}

func (f *Fixtures) createUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateEvent creates a planned event owned by creatorID, scheduled one
// week out with room for ten participants.
func (f *Fixtures) CreateEvent(ctx context.Context, creatorID primitive.ObjectID, title string) models.Event {
	return f.CreateEventWithDetails(ctx, creatorID, title, "Soccer", time.Now().UTC().Add(7*24*time.Hour), 10)
}

// CreateEventWithDetails creates a planned event with explicit sport,
// schedule and capacity.
func (f *Fixtures) CreateEventWithDetails(ctx context.Context, creatorID primitive.ObjectID, title, sport string, scheduledAt time.Time, maxParticipants int) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	ev := models.Event{
		ID:              primitive.NewObjectID(),
		Title:           title,
		Description:     "A test event",
		Location:        "Test Field",
		SportType:       sport,
		SportTypeCI:     text.Fold(sport),
		ScheduledAt:     scheduledAt,
		MaxParticipants: maxParticipants,
		Status:          eventstatus.Planned,
		CreatorID:       creatorID,
		ParticipantIDs:  []primitive.ObjectID{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}

// AddParticipant registers a user on an event directly, bypassing the
// capacity guard.
func (f *Fixtures) AddParticipant(ctx context.Context, eventID, userID primitive.ObjectID) {
	f.t.Helper()

	_, err := f.db.Collection("events").UpdateOne(ctx,
		bson.M{"_id": eventID},
		bson.M{"$addToSet": bson.M{"participant_ids": userID}})
	if err != nil {
		f.t.Fatalf("failed to add participant: %v", err)
	}
}
