package mailer

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func sampleData() EventEmailData {
	return EventEmailData{
		RecipientName: "Dana",
		EventTitle:    "Sunday Padel",
		ScheduledAt:   time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC),
		Location:      "Court 3",
	}
}

func TestBuildRegistrationConfirmed(t *testing.T) {
	e := BuildRegistrationConfirmed(sampleData())
	if e.Subject != "Event Registration Confirmation" {
		t.Errorf("subject: got %q", e.Subject)
	}
	for _, want := range []string{"Hi Dana,", "Sunday Padel", "Court 3", "Redlight Team"} {
		if !strings.Contains(e.TextBody, want) {
			t.Errorf("body missing %q:\n%s", want, e.TextBody)
		}
	}
}

func TestBuildCancellationNotice(t *testing.T) {
	e := BuildCancellationNotice(sampleData())
	if e.Subject != "Event Cancelled: Sunday Padel" {
		t.Errorf("subject: got %q", e.Subject)
	}
	if !strings.Contains(e.TextBody, "has been cancelled") {
		t.Errorf("body: %s", e.TextBody)
	}
	// Cancellation notices carry no stale date/location block.
	if strings.Contains(e.TextBody, "Date & Time") {
		t.Errorf("cancellation body should not repeat schedule:\n%s", e.TextBody)
	}
}

func TestBuildEventUpdated(t *testing.T) {
	e := BuildEventUpdated(sampleData())
	if e.Subject != "Update: Sunday Padel" {
		t.Errorf("subject: got %q", e.Subject)
	}
	for _, want := range []string{"New Date & Time:", "New Location: Court 3"} {
		if !strings.Contains(e.TextBody, want) {
			t.Errorf("body missing %q:\n%s", want, e.TextBody)
		}
	}
}

func TestBuildMessage_PlainText(t *testing.T) {
	m := New(Config{From: "noreply@redlight.app", FromName: "Redlight"}, zap.NewNop())
	msg := string(m.buildMessage(Email{
		To:       "dana@example.com",
		ToName:   "Dana",
		Subject:  "Hello",
		TextBody: "body",
	}))

	for _, want := range []string{
		"From: Redlight <noreply@redlight.app>\r\n",
		"To: Dana <dana@example.com>\r\n",
		"Subject: Hello\r\n",
		"Content-Type: text/plain; charset=UTF-8\r\n\r\nbody",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSend_DisabledIsNoop(t *testing.T) {
	m := New(Config{Enabled: false}, zap.NewNop())
	if err := m.Send(Email{To: "dana@example.com", Subject: "x", TextBody: "y"}); err != nil {
		t.Fatalf("disabled Send should succeed, got %v", err)
	}
}
