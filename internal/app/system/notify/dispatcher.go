// internal/app/system/notify/dispatcher.go
package notify

import (
	"sync"

	"github.com/dalemusser/redlight/internal/app/system/mailer"
	"go.uber.org/zap"
)

// Sender is the delivery half of the notification collaborator.
// *mailer.Mailer satisfies it.
type Sender interface {
	Send(mailer.Email) error
}

// Dispatcher delivers notifications in the background, best-effort.
type Dispatcher struct {
	sender Sender
	log    *zap.Logger
	wg     sync.WaitGroup
}

// NewDispatcher constructs a Dispatcher around a Sender.
func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, log: logger}
}

// Dispatch sends each notification on its own goroutine and returns
// immediately. Failures are logged, never returned: the operation that
// produced the notifications has already committed.
func (d *Dispatcher) Dispatch(notifications []Notification) {
	for _, n := range notifications {
		n := n
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			if err := d.sender.Send(buildEmail(n)); err != nil {
				d.log.Error("notification delivery failed",
					zap.String("kind", string(n.Kind)),
					zap.String("recipient", n.RecipientEmail),
					zap.String("event_id", n.EventID.Hex()),
					zap.Error(err))
			}
		}()
	}
}

// Wait blocks until all in-flight deliveries finish. Used in shutdown and
// tests; request paths never call it.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func buildEmail(n Notification) mailer.Email {
	data := mailer.EventEmailData{
		RecipientName: n.RecipientName,
		EventTitle:    n.EventTitle,
		ScheduledAt:   n.ScheduledAt,
		Location:      n.Location,
	}

	var e mailer.Email
	switch n.Kind {
	case AddedToEvent:
		e = mailer.BuildAddedToEvent(data)
	case CancellationNotice:
		e = mailer.BuildCancellationNotice(data)
	case EventUpdated:
		e = mailer.BuildEventUpdated(data)
	default:
		e = mailer.BuildRegistrationConfirmed(data)
	}

	e.To = n.RecipientEmail
	e.ToName = n.RecipientName
	return e
}
