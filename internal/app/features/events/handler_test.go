package events_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/redlight/internal/app/features/events"
	"github.com/dalemusser/redlight/internal/app/lifecycle"
	eventstore "github.com/dalemusser/redlight/internal/app/store/events"
	registrationstore "github.com/dalemusser/redlight/internal/app/store/registrations"
	userstore "github.com/dalemusser/redlight/internal/app/store/users"
	"github.com/dalemusser/redlight/internal/app/system/clock"
	"github.com/dalemusser/redlight/internal/app/system/eventstatus"
	"github.com/dalemusser/redlight/internal/domain/models"
	"github.com/dalemusser/redlight/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*events.Handler, *testutil.Fixtures, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := lifecycle.New(
		eventstore.New(db),
		registrationstore.New(db),
		userstore.New(db),
		nil,
		clock.System{},
		zap.NewNop(),
	)
	h := events.NewHandler(svc, userstore.New(db), nil, zap.NewNop())
	return h, testutil.NewFixtures(t, db), db
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(raw)
}

func decodeEvent(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestCreateHandler(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")

	body := jsonBody(t, map[string]any{
		"title":            "Pickup Soccer",
		"sport_type":       "Soccer",
		"location":         "City Park",
		"scheduled_at":     time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
		"max_participants": 10,
	})
	req := httptest.NewRequest("POST", "/events", body)
	req.Header.Set("Content-Type", "application/json")
	req = testutil.WithUser(req, testutil.UserFor(creator.ID, "participant"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	got := decodeEvent(t, rec)
	if got["title"] != "Pickup Soccer" {
		t.Errorf("title: got %v", got["title"])
	}
	if got["status"] != "planned" {
		t.Errorf("status: got %v", got["status"])
	}
}

func TestCreateHandlerValidation(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")

	body := jsonBody(t, map[string]any{
		"sport_type":       "Soccer",
		"scheduled_at":     time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
		"max_participants": 0,
	})
	req := httptest.NewRequest("POST", "/events", body)
	req = testutil.WithUser(req, testutil.UserFor(creator.ID, "participant"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestViewHandler(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	ev := fixtures.CreateEvent(ctx, creator.ID, "Visible")

	req := httptest.NewRequest("GET", "/events/"+ev.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
	rec := httptest.NewRecorder()

	h.View(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	got := decodeEvent(t, rec)
	if got["title"] != "Visible" {
		t.Errorf("title: got %v", got["title"])
	}

	// Unknown and malformed IDs both read as not found.
	for _, raw := range []string{"000000000000000000000000", "not-an-id"} {
		req := httptest.NewRequest("GET", "/events/"+raw, nil)
		req = testutil.WithChiURLParam(req, "id", raw)
		rec := httptest.NewRecorder()
		h.View(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("id %q: got %d, want 404", raw, rec.Code)
		}
	}
}

func TestListHandlerFilters(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	when := time.Now().UTC().Add(72 * time.Hour)
	fixtures.CreateEventWithDetails(ctx, creator.ID, "Soccer Night", "Soccer", when, 10)
	fixtures.CreateEventWithDetails(ctx, creator.ID, "Tennis Morning", "Tennis", when, 4)

	req := httptest.NewRequest("GET", "/events?sport=tennis", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out struct {
		Events []struct {
			Title string `json:"title"`
		} `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Title != "Tennis Morning" {
		t.Fatalf("filtered list: got %+v", out.Events)
	}

	// Bad date filter is rejected.
	req = httptest.NewRequest("GET", "/events?date=tomorrow", nil)
	rec = httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad date: got %d", rec.Code)
	}
}

func TestRegisterHandlerConflicts(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	user := fixtures.CreateUser(ctx, "User", "u@test.com")
	ev := fixtures.CreateEventWithDetails(ctx, creator.ID, "Tiny", "Chess", time.Now().UTC().Add(time.Hour), 1)

	register := func(u models.User) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", fmt.Sprintf("/events/%s/register", ev.ID.Hex()), nil)
		req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
		req = testutil.WithUser(req, testutil.UserFor(u.ID, "participant"))
		rec := httptest.NewRecorder()
		h.Register(rec, req)
		return rec
	}

	if rec := register(user); rec.Code != http.StatusOK {
		t.Fatalf("first register: got %d, body %s", rec.Code, rec.Body.String())
	}
	if rec := register(user); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: got %d", rec.Code)
	}

	other := fixtures.CreateUser(ctx, "Other", "o@test.com")
	rec := register(other)
	if rec.Code != http.StatusConflict {
		t.Fatalf("full event: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "capacity") {
		t.Errorf("full event message: got %s", rec.Body.String())
	}
}

func TestSetStatusHandler(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	stranger := fixtures.CreateUser(ctx, "Stranger", "s@test.com")
	ev := fixtures.CreateEvent(ctx, creator.ID, "E")

	setStatus := func(u models.User, role, status string) *httptest.ResponseRecorder {
		body := jsonBody(t, map[string]string{"status": status})
		req := httptest.NewRequest("POST", fmt.Sprintf("/events/%s/status", ev.ID.Hex()), body)
		req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
		req = testutil.WithUser(req, testutil.UserFor(u.ID, role))
		rec := httptest.NewRecorder()
		h.SetStatus(rec, req)
		return rec
	}

	if rec := setStatus(stranger, "participant", "cancelled"); rec.Code != http.StatusForbidden {
		t.Fatalf("stranger cancel: got %d", rec.Code)
	}
	if rec := setStatus(creator, "participant", "finished"); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown status: got %d", rec.Code)
	}
	rec := setStatus(creator, "participant", "cancelled")
	if rec.Code != http.StatusOK {
		t.Fatalf("creator cancel: got %d, body %s", rec.Code, rec.Body.String())
	}
	if got := decodeEvent(t, rec); got["status"] != string(eventstatus.Cancelled) {
		t.Errorf("status: got %v", got["status"])
	}
	// Terminal events reject further transitions.
	if rec := setStatus(creator, "participant", "completed"); rec.Code != http.StatusConflict {
		t.Fatalf("cancelled->completed: got %d", rec.Code)
	}
}

func TestDeleteHandler(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	ev := fixtures.CreateEvent(ctx, creator.ID, "Doomed")

	req := httptest.NewRequest("DELETE", "/events/"+ev.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
	req = testutil.WithUser(req, testutil.UserFor(creator.ID, "participant"))
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d", rec.Code)
	}

	// Reads of the deleted event answer 409, not 404.
	req = httptest.NewRequest("GET", "/events/"+ev.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
	rec = httptest.NewRecorder()
	h.View(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("view after delete: got %d", rec.Code)
	}
}

func TestParticipantHandlers(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	member := fixtures.CreateUser(ctx, "Member", "m@test.com")
	ev := fixtures.CreateEvent(ctx, creator.ID, "E")

	body := jsonBody(t, map[string]string{"user_id": member.ID.Hex()})
	req := httptest.NewRequest("POST", fmt.Sprintf("/events/%s/participants/add", ev.ID.Hex()), body)
	req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
	req = testutil.WithUser(req, testutil.UserFor(creator.ID, "participant"))
	rec := httptest.NewRecorder()
	h.AddParticipant(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("add participant: got %d, body %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest("GET", fmt.Sprintf("/events/%s/participants", ev.ID.Hex()), nil)
	req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
	rec = httptest.NewRecorder()
	h.Participants(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("participants: got %d", rec.Code)
	}
	var out struct {
		Participants []struct {
			Email string `json:"email"`
		} `json:"participants"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Participants) != 1 || out.Participants[0].Email != "m@test.com" {
		t.Fatalf("roster: got %+v", out.Participants)
	}
}

func TestAddParticipantByEmail(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	member := fixtures.CreateUser(ctx, "Member", "m@test.com")
	ev := fixtures.CreateEvent(ctx, creator.ID, "E")

	post := func(body map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", fmt.Sprintf("/events/%s/participants/add", ev.ID.Hex()), jsonBody(t, body))
		req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
		req = testutil.WithUser(req, testutil.UserFor(creator.ID, "participant"))
		rec := httptest.NewRecorder()
		h.AddParticipant(rec, req)
		return rec
	}

	if rec := post(map[string]string{"email": "m@test.com"}); rec.Code != http.StatusOK {
		t.Fatalf("add by email: got %d, body %s", rec.Code, rec.Body.String())
	}
	if rec := post(map[string]string{"email": "nobody@test.com"}); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown email: got %d", rec.Code)
	}
	if rec := post(map[string]string{}); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty target: got %d", rec.Code)
	}
	if rec := post(map[string]string{"user_id": member.ID.Hex(), "email": "m@test.com"}); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("both targets: got %d", rec.Code)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/events/%s/participants", ev.ID.Hex()), nil)
	req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
	rec := httptest.NewRecorder()
	h.Participants(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), member.ID.Hex()) {
		t.Fatalf("member not on roster after add by email: %s", rec.Body.String())
	}
}

func TestExportHandler(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	ev := fixtures.CreateEvent(ctx, creator.ID, "Calendar Event")

	req := httptest.NewRequest("GET", fmt.Sprintf("/events/%s/export", ev.ID.Hex()), nil)
	req = testutil.WithChiURLParam(req, "id", ev.ID.Hex())
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("export: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type: got %q", ct)
	}
	if body := rec.Body.String(); !strings.Contains(body, "BEGIN:VEVENT") || !strings.Contains(body, "Calendar Event") {
		t.Errorf("calendar body missing event: %s", body)
	}
}

func TestMineHandlers(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	creator := fixtures.CreateUser(ctx, "Creator", "c@test.com")
	joiner := fixtures.CreateUser(ctx, "Joiner", "j@test.com")
	ev := fixtures.CreateEvent(ctx, creator.ID, "Mine")
	fixtures.AddParticipant(ctx, ev.ID, joiner.ID)

	req := httptest.NewRequest("GET", "/events/mine/created", nil)
	req = testutil.WithUser(req, testutil.UserFor(creator.ID, "participant"))
	rec := httptest.NewRecorder()
	h.MineCreated(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Mine") {
		t.Fatalf("mine/created: got %d body %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest("GET", "/events/mine/registered", nil)
	req = testutil.WithUser(req, testutil.UserFor(joiner.ID, "participant"))
	rec = httptest.NewRecorder()
	h.MineRegistered(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Mine") {
		t.Fatalf("mine/registered: got %d body %s", rec.Code, rec.Body.String())
	}
}
