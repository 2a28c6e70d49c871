package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/redlight/internal/app/store/users"
	"github.com/dalemusser/redlight/internal/app/system/indexes"
	"github.com/dalemusser/redlight/internal/domain/models"
	"github.com/dalemusser/redlight/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, models.User{
		Name:  "Alice Smith",
		Email: "Alice@Example.COM",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.NameCI != "alice smith" {
		t.Errorf("name_ci not folded: %q", u.NameCI)
	}
	if u.Role != "participant" {
		t.Errorf("default role: got %q", u.Role)
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Alice Smith" {
		t.Errorf("GetByID name: got %q", got.Name)
	}

	byEmail, err := store.GetByEmail(ctx, "ALICE@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Error("GetByEmail returned a different user")
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}

	if _, err := store.Create(ctx, models.User{Name: "A", Email: "dup@test.com"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := store.Create(ctx, models.User{Name: "B", Email: "DUP@test.com"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{Name: "A", Email: "a@test.com", Role: "owner"}); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestFindByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fixtures.CreateUser(ctx, "A", "a@test.com")
	b := fixtures.CreateUser(ctx, "B", "b@test.com")
	fixtures.CreateUser(ctx, "C", "c@test.com")

	got, err := store.FindByIDs(ctx, []primitive.ObjectID{a.ID, b.ID, primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}

	none, err := store.FindByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("FindByIDs(nil): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no users for empty input, got %d", len(none))
	}
}

func TestListOrdersByFoldedName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Zoe", "z@test.com")
	fixtures.CreateUser(ctx, "Álvaro", "al@test.com")
	fixtures.CreateUser(ctx, "bob", "b@test.com")

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 users, got %d", len(got))
	}
	if got[0].Name != "Álvaro" || got[1].Name != "bob" || got[2].Name != "Zoe" {
		t.Errorf("expected folded-name order, got %v", []string{got[0].Name, got[1].Name, got[2].Name})
	}
}

func TestSetPhotoRef(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "A", "a@test.com")
	if err := store.SetPhotoRef(ctx, u.ID, "users/2026/08/abc-avatar.png"); err != nil {
		t.Fatalf("SetPhotoRef: %v", err)
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PhotoRef != "users/2026/08/abc-avatar.png" {
		t.Errorf("photo_ref: got %q", got.PhotoRef)
	}

	err = store.SetPhotoRef(ctx, primitive.NewObjectID(), "users/x.png")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments for missing user, got %v", err)
	}
}

func TestGetByIDMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "A", "a@test.com")
	if err := db.Collection("users").Drop(ctx); err != nil {
		t.Fatalf("drop: %v", err)
	}

	_, err := store.GetByID(ctx, u.ID)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}
