// internal/app/features/events/participants.go
package events

import (
	"errors"
	"net/http"

	"github.com/dalemusser/redlight/internal/app/system/httpjson"
	"github.com/dalemusser/redlight/internal/app/system/inputval"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Participants handles GET /events/{id}/participants.
func (h *Handler) Participants(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r, "id")
	if !ok {
		httpjson.Error(w, http.StatusNotFound, "event not found")
		return
	}

	users, err := h.svc.Participants(r.Context(), id)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"participants": toParticipantResponses(users)})
}

// AddParticipant handles POST /events/{id}/participants/add. Only the
// creator or an admin may register someone else.
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	h.manageParticipant(w, r, true)
}

// RemoveParticipant handles POST /events/{id}/participants/remove.
// Users may remove themselves; removing others requires creator or
// admin rights.
func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	h.manageParticipant(w, r, false)
}

func (h *Handler) manageParticipant(w http.ResponseWriter, r *http.Request, add bool) {
	act, ok := actor(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := eventID(r, "id")
	if !ok {
		httpjson.Error(w, http.StatusNotFound, "event not found")
		return
	}

	var req participantRequest
	if err := httpjson.Read(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if res := inputval.Validate(req); res.HasErrors() {
		httpjson.Error(w, http.StatusUnprocessableEntity, res.First())
		return
	}
	targetID, ok := h.resolveTarget(w, r, req)
	if !ok {
		return
	}

	var err error
	if add {
		err = h.svc.AddParticipant(r.Context(), act, id, targetID)
	} else {
		err = h.svc.RemoveParticipant(r.Context(), act, id, targetID)
	}
	if err != nil {
		h.writeErr(w, err)
		return
	}

	status := "added"
	if !add {
		status = "removed"
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": status})
}

// resolveTarget turns a participant request into a user ID. Exactly one
// of user_id and email must be set; an email is looked up against the
// user store.
func (h *Handler) resolveTarget(w http.ResponseWriter, r *http.Request, req participantRequest) (primitive.ObjectID, bool) {
	switch {
	case req.UserID != "" && req.Email != "":
		httpjson.Error(w, http.StatusUnprocessableEntity, "provide either user_id or email, not both")
		return primitive.NilObjectID, false
	case req.UserID != "":
		id, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			httpjson.Error(w, http.StatusUnprocessableEntity, "user_id is not a valid ID")
			return primitive.NilObjectID, false
		}
		return id, true
	case req.Email != "":
		u, err := h.users.GetByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				httpjson.Error(w, http.StatusNotFound, "no user with that email")
				return primitive.NilObjectID, false
			}
			h.writeErr(w, err)
			return primitive.NilObjectID, false
		}
		return u.ID, true
	default:
		httpjson.Error(w, http.StatusUnprocessableEntity, "user_id or email is required")
		return primitive.NilObjectID, false
	}
}
