package lifecycle

import (
	"context"
	"errors"

	"github.com/dalemusser/redlight/internal/app/policy/eventpolicy"
	registrationstore "github.com/dalemusser/redlight/internal/app/store/registrations"
	"github.com/dalemusser/redlight/internal/app/system/notify"
	"github.com/dalemusser/redlight/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func mapRegistrationErr(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, registrationstore.ErrAlreadyRegistered):
		return ErrAlreadyRegistered
	case errors.Is(err, registrationstore.ErrEventFull):
		return ErrEventFull
	case errors.Is(err, registrationstore.ErrEventUnavailable):
		return ErrEventUnavailable
	default:
		return err
	}
}

// Register admits the actor to the event's participant set and sends a
// confirmation email. The capacity check and the admission commit
// together; concurrent registrations cannot exceed capacity.
func (s *Service) Register(ctx context.Context, actor Actor, eventID primitive.ObjectID) error {
	if actor.ID == primitive.NilObjectID {
		return ErrUnauthorized
	}
	if err := s.regs.Add(ctx, eventID, actor.ID); err != nil {
		return mapRegistrationErr(err)
	}

	s.log.Info("user registered",
		zap.String("event_id", eventID.Hex()),
		zap.String("user_id", actor.ID.Hex()))
	s.notifyUser(ctx, eventID, actor.ID, notify.RegistrationConfirmed)
	return nil
}

// Unregister withdraws the actor from the event. Withdrawing when not
// registered is a no-op.
func (s *Service) Unregister(ctx context.Context, actor Actor, eventID primitive.ObjectID) error {
	if actor.ID == primitive.NilObjectID {
		return ErrUnauthorized
	}
	if err := s.regs.Remove(ctx, eventID, actor.ID); err != nil {
		return mapRegistrationErr(err)
	}

	s.log.Info("user unregistered",
		zap.String("event_id", eventID.Hex()),
		zap.String("user_id", actor.ID.Hex()))
	return nil
}

// AddParticipant registers another user on the event. Only the creator
// or an admin may do this. The target user must exist and receives an
// added-to-event email.
func (s *Service) AddParticipant(ctx context.Context, actor Actor, eventID, targetID primitive.ObjectID) error {
	ev, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if !eventpolicy.CanMutate(actor.ID, actor.Role, ev) {
		return ErrUnauthorized
	}
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	if err := s.regs.Add(ctx, eventID, targetID); err != nil {
		return mapRegistrationErr(err)
	}

	s.log.Info("participant added",
		zap.String("event_id", eventID.Hex()),
		zap.String("user_id", targetID.Hex()),
		zap.String("actor_id", actor.ID.Hex()))
	s.notifyUser(ctx, eventID, targetID, notify.AddedToEvent)
	return nil
}

// RemoveParticipant takes a user out of the event's participant set.
// Users may remove themselves; removing anyone else requires creator or
// admin rights.
func (s *Service) RemoveParticipant(ctx context.Context, actor Actor, eventID, targetID primitive.ObjectID) error {
	ev, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if !eventpolicy.CanRemoveParticipant(actor.ID, actor.Role, ev, targetID) {
		return ErrUnauthorized
	}

	if err := s.regs.Remove(ctx, eventID, targetID); err != nil {
		return mapRegistrationErr(err)
	}

	s.log.Info("participant removed",
		zap.String("event_id", eventID.Hex()),
		zap.String("user_id", targetID.Hex()),
		zap.String("actor_id", actor.ID.Hex()))
	return nil
}

// Participants returns the registered users of an event.
func (s *Service) Participants(ctx context.Context, eventID primitive.ObjectID) ([]models.User, error) {
	ev, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByIDs(ctx, ev.ParticipantIDs)
}

// notifyUser sends a single event notification to one user. Lookup
// failures are logged, never surfaced; the registration itself already
// committed.
func (s *Service) notifyUser(ctx context.Context, eventID, userID primitive.ObjectID, kind notify.Kind) {
	if s.dispatcher == nil {
		return
	}
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		s.log.Warn("failed to load event for notification", zap.Error(err))
		return
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.Warn("failed to load user for notification", zap.Error(err))
		return
	}
	s.dispatch([]notify.Notification{{
		Kind:           kind,
		RecipientEmail: u.Email,
		RecipientName:  u.Name,
		EventID:        ev.ID,
		EventTitle:     ev.Title,
		Location:       ev.Location,
		ScheduledAt:    ev.ScheduledAt,
	}})
}
