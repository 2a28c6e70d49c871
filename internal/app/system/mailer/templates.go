// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"time"
)

const signature = "Redlight Team"

// eventTimeLayout is the human-readable form used in email bodies.
const eventTimeLayout = "Mon, 02 Jan 2006 15:04 MST"

// EventEmailData holds the fields the event email bodies interpolate.
type EventEmailData struct {
	RecipientName string
	EventTitle    string
	ScheduledAt   time.Time
	Location      string
}

// BuildRegistrationConfirmed creates the email sent to a user who
// registered themselves for an event.
func BuildRegistrationConfirmed(data EventEmailData) Email {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Hi %s,\n\n", data.RecipientName)
	fmt.Fprintf(&buf, "You have successfully registered for the event: %s.\n\n", data.EventTitle)
	writeWhenWhere(&buf, data)
	fmt.Fprintf(&buf, "%s\n", signature)

	return Email{
		Subject:  "Event Registration Confirmation",
		TextBody: buf.String(),
	}
}

// BuildAddedToEvent creates the email sent to a user an organizer added.
func BuildAddedToEvent(data EventEmailData) Email {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Hi %s,\n\n", data.RecipientName)
	fmt.Fprintf(&buf, "You've been added to the event: %s.\n\n", data.EventTitle)
	writeWhenWhere(&buf, data)
	fmt.Fprintf(&buf, "%s\n", signature)

	return Email{
		Subject:  "You've been added to an event",
		TextBody: buf.String(),
	}
}

// BuildCancellationNotice creates the email sent to every participant when
// an event is cancelled.
func BuildCancellationNotice(data EventEmailData) Email {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Hi %s,\n\n", data.RecipientName)
	fmt.Fprintf(&buf, "We regret to inform you that the event '%s' has been cancelled.\n\n", data.EventTitle)
	fmt.Fprintf(&buf, "%s\n", signature)

	return Email{
		Subject:  fmt.Sprintf("Event Cancelled: %s", data.EventTitle),
		TextBody: buf.String(),
	}
}

// BuildEventUpdated creates the email sent to every participant when the
// location or scheduled time of an event changed.
func BuildEventUpdated(data EventEmailData) Email {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Hi %s,\n\n", data.RecipientName)
	fmt.Fprintf(&buf, "The event '%s' has been updated.\n\n", data.EventTitle)
	fmt.Fprintf(&buf, "New Date & Time: %s\n", data.ScheduledAt.Format(eventTimeLayout))
	fmt.Fprintf(&buf, "New Location: %s\n\n", data.Location)
	fmt.Fprintf(&buf, "%s\n", signature)

	return Email{
		Subject:  fmt.Sprintf("Update: %s", data.EventTitle),
		TextBody: buf.String(),
	}
}

func writeWhenWhere(buf *bytes.Buffer, data EventEmailData) {
	fmt.Fprintf(buf, "Date & Time: %s\n", data.ScheduledAt.Format(eventTimeLayout))
	fmt.Fprintf(buf, "Location: %s\n\n", data.Location)
}
