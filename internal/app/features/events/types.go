// internal/app/features/events/types.go
package events

import (
	"time"

	"github.com/dalemusser/redlight/internal/domain/models"
)

// createRequest is the body of POST /events.
type createRequest struct {
	Title           string    `json:"title" validate:"required,max=100" label:"Title"`
	Description     string    `json:"description" validate:"max=2000" label:"Description"`
	Location        string    `json:"location" validate:"max=200" label:"Location"`
	SportType       string    `json:"sport_type" validate:"required,max=50" label:"Sport type"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required" label:"Scheduled time"`
	MaxParticipants int       `json:"max_participants" validate:"gt=0" label:"Max participants"`
}

// editRequest is the body of PATCH /events/{id}. Absent fields are left
// unchanged.
type editRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Location        *string    `json:"location"`
	SportType       *string    `json:"sport_type"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	MaxParticipants *int       `json:"max_participants"`
}

// statusRequest is the body of POST /events/{id}/status.
type statusRequest struct {
	Status string `json:"status" validate:"required" label:"Status"`
}

// participantRequest is the body of the participant add/remove
// endpoints. The target user may be named by ID or by email.
type participantRequest struct {
	UserID string `json:"user_id" validate:"omitempty" label:"User ID"`
	Email  string `json:"email" validate:"omitempty,email" label:"Email"`
}

// eventResponse is the JSON shape of an event.
type eventResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Location         string    `json:"location,omitempty"`
	SportType        string    `json:"sport_type"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	MaxParticipants  int       `json:"max_participants"`
	ParticipantCount int       `json:"participant_count"`
	Status           string    `json:"status"`
	CreatorID        string    `json:"creator_id"`
	PhotoRefs        []string  `json:"photo_refs,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toEventResponse(ev models.Event) eventResponse {
	return eventResponse{
		ID:               ev.ID.Hex(),
		Title:            ev.Title,
		Description:      ev.Description,
		Location:         ev.Location,
		SportType:        ev.SportType,
		ScheduledAt:      ev.ScheduledAt,
		MaxParticipants:  ev.MaxParticipants,
		ParticipantCount: len(ev.ParticipantIDs),
		Status:           string(ev.Status),
		CreatorID:        ev.CreatorID.Hex(),
		PhotoRefs:        ev.PhotoRefs,
		CreatedAt:        ev.CreatedAt,
		UpdatedAt:        ev.UpdatedAt,
	}
}

func toEventResponses(events []models.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return out
}

// participantResponse is the JSON shape of a registered user.
type participantResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toParticipantResponses(users []models.User) []participantResponse {
	out := make([]participantResponse, 0, len(users))
	for _, u := range users {
		out = append(out, participantResponse{
			ID:    u.ID.Hex(),
			Name:  u.Name,
			Email: u.Email,
		})
	}
	return out
}
