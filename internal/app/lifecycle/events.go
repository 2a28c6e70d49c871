package lifecycle

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/redlight/internal/app/policy/eventpolicy"
	eventstore "github.com/dalemusser/redlight/internal/app/store/events"
	"github.com/dalemusser/redlight/internal/app/system/eventstatus"
	"github.com/dalemusser/redlight/internal/app/system/normalize"
	"github.com/dalemusser/redlight/internal/app/system/notify"
	"github.com/dalemusser/redlight/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateInput holds the fields for a new event.
type CreateInput struct {
	Title           string
	Description     string
	Location        string
	SportType       string
	ScheduledAt     time.Time
	MaxParticipants int
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(normalize.Text(in.Title)) == "" {
		return invalidInput("title is required")
	}
	if strings.TrimSpace(normalize.Sport(in.SportType)) == "" {
		return invalidInput("sport type is required")
	}
	if in.ScheduledAt.IsZero() {
		return invalidInput("scheduled time is required")
	}
	if in.MaxParticipants <= 0 {
		return invalidInput("max participants must be greater than zero")
	}
	return nil
}

// Create makes a new planned event owned by the actor.
func (s *Service) Create(ctx context.Context, actor Actor, in CreateInput) (models.Event, error) {
	if actor.ID == primitive.NilObjectID {
		return models.Event{}, ErrUnauthorized
	}
	if err := in.validate(); err != nil {
		return models.Event{}, err
	}

	ev, err := s.events.Create(ctx, models.Event{
		Title:           in.Title,
		Description:     in.Description,
		Location:        in.Location,
		SportType:       in.SportType,
		ScheduledAt:     in.ScheduledAt.UTC(),
		MaxParticipants: in.MaxParticipants,
		CreatorID:       actor.ID,
	})
	if err != nil {
		return models.Event{}, err
	}

	s.log.Info("event created",
		zap.String("event_id", ev.ID.Hex()),
		zap.String("creator_id", actor.ID.Hex()),
		zap.String("sport", ev.SportType))
	return ev, nil
}

// EditInput holds a partial update of event details. Nil fields are
// left unchanged.
type EditInput struct {
	Title           *string
	Description     *string
	Location        *string
	SportType       *string
	ScheduledAt     *time.Time
	MaxParticipants *int
}

// Edit updates an event's details. Capacity may not be lowered below
// the current number of participants. Participants are notified when
// the schedule or location changes.
func (s *Service) Edit(ctx context.Context, actor Actor, id primitive.ObjectID, in EditInput) (models.Event, error) {
	ev, err := s.Get(ctx, id)
	if err != nil {
		return models.Event{}, err
	}
	if !eventpolicy.CanMutate(actor.ID, actor.Role, ev) {
		return models.Event{}, ErrUnauthorized
	}

	if in.Title != nil && strings.TrimSpace(normalize.Text(*in.Title)) == "" {
		return models.Event{}, invalidInput("title cannot be empty")
	}
	if in.SportType != nil && strings.TrimSpace(normalize.Sport(*in.SportType)) == "" {
		return models.Event{}, invalidInput("sport type cannot be empty")
	}
	if in.MaxParticipants != nil {
		if *in.MaxParticipants <= 0 {
			return models.Event{}, invalidInput("max participants must be greater than zero")
		}
		if *in.MaxParticipants < len(ev.ParticipantIDs) {
			return models.Event{}, invalidInput("max participants cannot be lower than the current participant count")
		}
	}

	rescheduled := in.ScheduledAt != nil && !in.ScheduledAt.UTC().Equal(ev.ScheduledAt)
	relocated := in.Location != nil && normalize.Text(*in.Location) != ev.Location

	updated, err := s.events.UpdateDetails(ctx, id, eventstore.DetailsUpdate{
		Title:           in.Title,
		Description:     in.Description,
		Location:        in.Location,
		SportType:       in.SportType,
		ScheduledAt:     in.ScheduledAt,
		MaxParticipants: in.MaxParticipants,
	})
	if err != nil {
		return models.Event{}, mapEventErr(err)
	}

	if rescheduled || relocated {
		s.dispatch(s.participantNotifications(ctx, updated, notify.EventUpdated))
	}

	s.log.Info("event updated",
		zap.String("event_id", id.Hex()),
		zap.String("actor_id", actor.ID.Hex()))
	return updated, nil
}

// SetStatus transitions an event to a new status. Planned events may be
// completed or cancelled; completed and cancelled are terminal. Setting
// the current status again is a no-op. Cancelling notifies all
// registered participants.
func (s *Service) SetStatus(ctx context.Context, actor Actor, id primitive.ObjectID, to eventstatus.Status) (models.Event, error) {
	ev, err := s.Get(ctx, id)
	if err != nil {
		return models.Event{}, err
	}
	if !eventpolicy.CanMutate(actor.ID, actor.Role, ev) {
		return models.Event{}, ErrUnauthorized
	}

	if ev.Status == to {
		return ev, nil
	}
	if !eventstatus.CanTransition(ev.Status, to) {
		return models.Event{}, ErrInvalidTransition
	}

	if err := s.events.SetStatus(ctx, id, ev.Status, to); err != nil {
		if errors.Is(err, eventstore.ErrStatusConflict) {
			return models.Event{}, ErrInvalidTransition
		}
		return models.Event{}, mapEventErr(err)
	}
	ev.Status = to

	if to == eventstatus.Cancelled {
		s.dispatch(s.participantNotifications(ctx, ev, notify.CancellationNotice))
	}

	s.log.Info("event status changed",
		zap.String("event_id", id.Hex()),
		zap.String("status", string(to)),
		zap.String("actor_id", actor.ID.Hex()))
	return ev, nil
}

// Cancel is a convenience wrapper for SetStatus to cancelled.
func (s *Service) Cancel(ctx context.Context, actor Actor, id primitive.ObjectID) (models.Event, error) {
	return s.SetStatus(ctx, actor, id, eventstatus.Cancelled)
}

// Delete soft-deletes an event. The record keeps its status and
// participant set but disappears from all reads.
func (s *Service) Delete(ctx context.Context, actor Actor, id primitive.ObjectID) error {
	ev, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !eventpolicy.CanMutate(actor.ID, actor.Role, ev) {
		return ErrUnauthorized
	}

	if err := s.events.SoftDelete(ctx, id); err != nil {
		return mapEventErr(err)
	}

	s.log.Info("event deleted",
		zap.String("event_id", id.Hex()),
		zap.String("actor_id", actor.ID.Hex()))
	return nil
}

// ListVisible returns non-deleted events matching the filter. Planned
// events whose scheduled time has passed are completed first, so
// listings never show a stale planned event.
func (s *Service) ListVisible(ctx context.Context, f eventstore.Filter) ([]models.Event, error) {
	if _, err := s.events.ExpireStale(ctx, s.clock.Now()); err != nil {
		s.log.Warn("pre-list sweep failed", zap.Error(err))
	}
	return s.events.List(ctx, f)
}

// AttachPhoto records an uploaded photo's storage path on the event.
func (s *Service) AttachPhoto(ctx context.Context, id primitive.ObjectID, ref string) error {
	if err := s.events.AppendPhotoRef(ctx, id, ref); err != nil {
		return mapEventErr(err)
	}
	return nil
}

// SportTypes returns the distinct sport types across visible events.
func (s *Service) SportTypes(ctx context.Context) ([]string, error) {
	return s.events.DistinctSportTypes(ctx)
}

// CreatedBy returns the visible events a user created.
func (s *Service) CreatedBy(ctx context.Context, userID primitive.ObjectID) ([]models.Event, error) {
	return s.events.FindByCreator(ctx, userID)
}

// RegisteredFor returns the visible events a user is registered for.
func (s *Service) RegisteredFor(ctx context.Context, userID primitive.ObjectID) ([]models.Event, error) {
	return s.events.FindByParticipant(ctx, userID)
}
