package eventstore_test

import (
	"errors"
	"testing"
	"time"

	eventstore "github.com/dalemusser/redlight/internal/app/store/events"
	"github.com/dalemusser/redlight/internal/app/system/eventstatus"
	"github.com/dalemusser/redlight/internal/domain/models"
	"github.com/dalemusser/redlight/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreateDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	ev, err := store.Create(ctx, models.Event{
		Title:           "  Morning Run ",
		SportType:       "Running",
		ScheduledAt:     time.Now().UTC().Add(48 * time.Hour),
		MaxParticipants: 5,
		CreatorID:       primitive.NewObjectID(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ev.Title != "Morning Run" {
		t.Errorf("title not trimmed: %q", ev.Title)
	}
	if ev.SportTypeCI != "running" {
		t.Errorf("sport_type_ci: got %q", ev.SportTypeCI)
	}
	if ev.Status != eventstatus.Planned {
		t.Errorf("new event status: got %q", ev.Status)
	}
	if ev.ParticipantIDs == nil || len(ev.ParticipantIDs) != 0 {
		t.Errorf("expected empty participant set, got %v", ev.ParticipantIDs)
	}

	got, err := store.GetByID(ctx, ev.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Morning Run" {
		t.Errorf("roundtrip title: got %q", got.Title)
	}
}

func TestUpdateDetailsPartial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	ev := fixtures.CreateEvent(ctx, primitive.NewObjectID(), "Original")

	title := "<b>Updated</b>"
	max := 20
	got, err := store.UpdateDetails(ctx, ev.ID, eventstore.DetailsUpdate{
		Title:           &title,
		MaxParticipants: &max,
	})
	if err != nil {
		t.Fatalf("UpdateDetails: %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("markup not stripped from title: %q", got.Title)
	}
	if got.MaxParticipants != 20 {
		t.Errorf("max_participants: got %d", got.MaxParticipants)
	}
	if got.Location != ev.Location {
		t.Errorf("location should be unchanged, got %q", got.Location)
	}
}

func TestSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	ev := fixtures.CreateEvent(ctx, primitive.NewObjectID(), "E")

	if err := store.SetStatus(ctx, ev.ID, eventstatus.Planned, eventstatus.Cancelled); err != nil {
		t.Fatalf("SetStatus planned->cancelled: %v", err)
	}

	// A second transition from planned must conflict.
	err := store.SetStatus(ctx, ev.ID, eventstatus.Planned, eventstatus.Completed)
	if !errors.Is(err, eventstore.ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict, got %v", err)
	}

	// Missing events surface as no documents.
	err = store.SetStatus(ctx, primitive.NewObjectID(), eventstatus.Planned, eventstatus.Cancelled)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}

func TestSoftDeleteHidesEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	ev := fixtures.CreateEvent(ctx, primitive.NewObjectID(), "Gone")

	if err := store.SoftDelete(ctx, ev.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	if _, err := store.GetByID(ctx, ev.ID); !errors.Is(err, eventstore.ErrDeleted) {
		t.Fatalf("expected ErrDeleted after delete, got %v", err)
	}

	events, err := store.List(ctx, eventstore.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("deleted event still listed: %v", events)
	}

	// Deleting again reports the event as already deleted.
	if err := store.SoftDelete(ctx, ev.ID); !errors.Is(err, eventstore.ErrDeleted) {
		t.Fatalf("expected ErrDeleted on double delete, got %v", err)
	}

	// A missing event is still distinguishable from a deleted one.
	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments for missing event, got %v", err)
	}
	if err := store.SetStatus(ctx, ev.ID, eventstatus.Planned, eventstatus.Cancelled); !errors.Is(err, eventstore.ErrDeleted) {
		t.Fatalf("expected ErrDeleted from SetStatus, got %v", err)
	}
	if err := store.AppendPhotoRef(ctx, ev.ID, "events/x.jpg"); !errors.Is(err, eventstore.ErrDeleted) {
		t.Fatalf("expected ErrDeleted from AppendPhotoRef, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	day1 := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC)
	fixtures.CreateEventWithDetails(ctx, creator, "Evening Soccer", "Soccer", day1, 10)
	fixtures.CreateEventWithDetails(ctx, creator, "Morning Tennis", "Tennis", day2, 4)
	fixtures.CreateEventWithDetails(ctx, creator, "Table Tennis", "Table Tennis", day2, 4)

	// Substring, case-insensitive sport match.
	got, err := store.List(ctx, eventstore.Filter{Sport: "TENNIS"})
	if err != nil {
		t.Fatalf("List sport: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sport filter: expected 2 events, got %d", len(got))
	}

	// Exact calendar day.
	got, err = store.List(ctx, eventstore.Filter{Date: day1})
	if err != nil {
		t.Fatalf("List date: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Evening Soccer" {
		t.Fatalf("date filter: got %v", got)
	}

	// Unfiltered list is ordered by schedule ascending.
	got, err = store.List(ctx, eventstore.Filter{})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(got) != 3 || got[0].Title != "Evening Soccer" {
		t.Fatalf("expected schedule-ascending order, got %v", got)
	}
}

func TestExpireStale(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	now := time.Now().UTC()
	past := fixtures.CreateEventWithDetails(ctx, creator, "Past", "Soccer", now.Add(-2*time.Hour), 10)
	due := fixtures.CreateEventWithDetails(ctx, creator, "Due", "Soccer", now, 10)
	future := fixtures.CreateEventWithDetails(ctx, creator, "Future", "Soccer", now.Add(2*time.Hour), 10)

	cancelled := fixtures.CreateEventWithDetails(ctx, creator, "Cancelled", "Soccer", now.Add(-2*time.Hour), 10)
	if err := store.SetStatus(ctx, cancelled.ID, eventstatus.Planned, eventstatus.Cancelled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	count, err := store.ExpireStale(ctx, now)
	if err != nil {
		t.Fatalf("ExpireStale: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 expired events, got %d", count)
	}

	got, err := store.GetByID(ctx, past.ID)
	if err != nil {
		t.Fatalf("GetByID past: %v", err)
	}
	if got.Status != eventstatus.Completed {
		t.Errorf("past event status: got %q", got.Status)
	}

	// An event scheduled exactly at the sweep time is due.
	got, err = store.GetByID(ctx, due.ID)
	if err != nil {
		t.Fatalf("GetByID due: %v", err)
	}
	if got.Status != eventstatus.Completed {
		t.Errorf("due event status: got %q", got.Status)
	}

	got, err = store.GetByID(ctx, future.ID)
	if err != nil {
		t.Fatalf("GetByID future: %v", err)
	}
	if got.Status != eventstatus.Planned {
		t.Errorf("future event touched: %q", got.Status)
	}

	got, err = store.GetByID(ctx, cancelled.ID)
	if err != nil {
		t.Fatalf("GetByID cancelled: %v", err)
	}
	if got.Status != eventstatus.Cancelled {
		t.Errorf("cancelled event touched: %q", got.Status)
	}

	// A second run finds nothing.
	count, err = store.ExpireStale(ctx, now)
	if err != nil {
		t.Fatalf("ExpireStale again: %v", err)
	}
	if count != 0 {
		t.Errorf("expected idempotent sweep, got %d", count)
	}
}

func TestDistinctSportTypesAndCreatorLookups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	other := primitive.NewObjectID()
	when := time.Now().UTC().Add(24 * time.Hour)
	fixtures.CreateEventWithDetails(ctx, creator, "A", "Soccer", when, 5)
	fixtures.CreateEventWithDetails(ctx, creator, "B", "Tennis", when, 5)
	fixtures.CreateEventWithDetails(ctx, other, "C", "Soccer", when, 5)

	sports, err := store.DistinctSportTypes(ctx)
	if err != nil {
		t.Fatalf("DistinctSportTypes: %v", err)
	}
	if len(sports) != 2 {
		t.Fatalf("expected 2 sports, got %v", sports)
	}

	mine, err := store.FindByCreator(ctx, creator)
	if err != nil {
		t.Fatalf("FindByCreator: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 events for creator, got %d", len(mine))
	}
}

func TestFindByParticipant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := primitive.NewObjectID()
	ev := fixtures.CreateEvent(ctx, primitive.NewObjectID(), "Joined")
	fixtures.CreateEvent(ctx, primitive.NewObjectID(), "Not joined")
	fixtures.AddParticipant(ctx, ev.ID, user)

	got, err := store.FindByParticipant(ctx, user)
	if err != nil {
		t.Fatalf("FindByParticipant: %v", err)
	}
	if len(got) != 1 || got[0].ID != ev.ID {
		t.Fatalf("expected only the joined event, got %v", got)
	}
}
