package httpjson_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/redlight/internal/app/system/httpjson"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Write(rec, 201, map[string]string{"id": "abc"})

	if rec.Code != 201 {
		t.Errorf("status: got %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}
	if got := rec.Body.String(); got != `{"id":"abc"}` {
		t.Errorf("body: got %s", got)
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Error(rec, 409, "event is full")

	if rec.Code != 409 {
		t.Errorf("status: got %d, want 409", rec.Code)
	}
	if got := rec.Body.String(); got != `{"error":"event is full"}` {
		t.Errorf("body: got %s", got)
	}
}

func TestRead(t *testing.T) {
	type payload struct {
		UserID string `json:"user_id"`
	}

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"user_id":"123"}`))
		var p payload
		if err := httpjson.Read(httptest.NewRecorder(), req, &p); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if p.UserID != "123" {
			t.Errorf("user_id: got %q", p.UserID)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"user_id":"123","extra":true}`))
		var p payload
		if err := httpjson.Read(httptest.NewRecorder(), req, &p); err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("trailing value", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"user_id":"1"}{"user_id":"2"}`))
		var p payload
		if err := httpjson.Read(httptest.NewRecorder(), req, &p); err == nil {
			t.Error("expected error for trailing JSON value")
		}
	})
}
