// Package lifecycle implements event state management and registration
// on top of the stores. All mutations go through here so authorization,
// validation and notification triggers stay in one place.
package lifecycle

import (
	"context"
	"errors"
	"time"

	eventstore "github.com/dalemusser/redlight/internal/app/store/events"
	registrationstore "github.com/dalemusser/redlight/internal/app/store/registrations"
	userstore "github.com/dalemusser/redlight/internal/app/store/users"
	"github.com/dalemusser/redlight/internal/app/system/clock"
	"github.com/dalemusser/redlight/internal/app/system/notify"
	"github.com/dalemusser/redlight/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Actor identifies who is performing an operation.
type Actor struct {
	ID   primitive.ObjectID
	Role string
}

// Service coordinates event lifecycle operations.
type Service struct {
	events     *eventstore.Store
	regs       *registrationstore.Store
	users      *userstore.Store
	dispatcher *notify.Dispatcher
	clock      clock.Clock
	log        *zap.Logger
}

// New creates a lifecycle service. The dispatcher may be nil, which
// disables notifications (used in tests that do not assert on them).
func New(events *eventstore.Store, regs *registrationstore.Store, users *userstore.Store, dispatcher *notify.Dispatcher, clk clock.Clock, logger *zap.Logger) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{
		events:     events,
		regs:       regs,
		users:      users,
		dispatcher: dispatcher,
		clock:      clk,
		log:        logger,
	}
}

// Get loads a single visible event.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		return models.Event{}, mapEventErr(err)
	}
	return ev, nil
}

// mapEventErr translates event store errors into the service taxonomy.
// A soft-deleted event surfaces as unavailable rather than missing.
func mapEventErr(err error) error {
	switch {
	case errors.Is(err, eventstore.ErrDeleted):
		return ErrEventUnavailable
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	default:
		return err
	}
}

// ExpireStale completes planned events whose scheduled time has passed.
func (s *Service) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	return s.events.ExpireStale(ctx, now)
}

func (s *Service) dispatch(ns []notify.Notification) {
	if s.dispatcher == nil || len(ns) == 0 {
		return
	}
	s.dispatcher.Dispatch(ns)
}

// participantNotifications builds one notification of the given kind
// for every registered participant of the event.
func (s *Service) participantNotifications(ctx context.Context, ev models.Event, kind notify.Kind) []notify.Notification {
	if len(ev.ParticipantIDs) == 0 {
		return nil
	}
	users, err := s.users.FindByIDs(ctx, ev.ParticipantIDs)
	if err != nil {
		s.log.Warn("failed to load participants for notification",
			zap.String("event_id", ev.ID.Hex()),
			zap.Error(err))
		return nil
	}
	out := make([]notify.Notification, 0, len(users))
	for _, u := range users {
		out = append(out, notify.Notification{
			Kind:           kind,
			RecipientEmail: u.Email,
			RecipientName:  u.Name,
			EventID:        ev.ID,
			EventTitle:     ev.Title,
			Location:       ev.Location,
			ScheduledAt:    ev.ScheduledAt,
		})
	}
	return out
}
