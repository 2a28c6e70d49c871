// internal/app/system/notify/notify.go

// Package notify defines the notification events the lifecycle service
// emits and the dispatcher that hands them to the mail collaborator.
//
// The service never sends mail inside a request: operations return the
// notifications they produced and the handler passes them to Dispatch,
// which delivers asynchronously. A delivery failure is logged and dropped;
// it never affects the outcome of the operation that produced it.
package notify

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind identifies what happened; it selects the email template.
type Kind string

const (
	RegistrationConfirmed Kind = "registration_confirmed"
	AddedToEvent          Kind = "added_to_event"
	CancellationNotice    Kind = "cancellation_notice"
	EventUpdated          Kind = "event_updated"
)

// Notification describes one outbound message the core wants sent.
type Notification struct {
	Kind           Kind
	RecipientEmail string
	RecipientName  string

	EventID    primitive.ObjectID
	EventTitle string
	Location   string
	ScheduledAt time.Time
}
