// internal/app/features/events/edit.go
package events

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/lifecycle"
	"github.com/dalemusser/redlight/internal/app/system/httpjson"
)

// Edit handles PATCH /events/{id}. Only the fields present in the body
// are changed.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
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

	var req editRequest
	if err := httpjson.Read(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := h.svc.Edit(r.Context(), act, id, lifecycle.EditInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		SportType:       req.SportType,
		ScheduledAt:     req.ScheduledAt,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toEventResponse(ev))
}
