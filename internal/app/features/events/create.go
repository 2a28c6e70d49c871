// internal/app/features/events/create.go
package events

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/lifecycle"
	"github.com/dalemusser/redlight/internal/app/system/httpjson"
	"github.com/dalemusser/redlight/internal/app/system/inputval"
)

// Create handles POST /events.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	act, ok := actor(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createRequest
	if err := httpjson.Read(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if res := inputval.Validate(req); res.HasErrors() {
		httpjson.Error(w, http.StatusUnprocessableEntity, res.First())
		return
	}

	ev, err := h.svc.Create(r.Context(), act, lifecycle.CreateInput{
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
	httpjson.Write(w, http.StatusCreated, toEventResponse(ev))
}
