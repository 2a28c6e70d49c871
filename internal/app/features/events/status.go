// internal/app/features/events/status.go
package events

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/system/eventstatus"
	"github.com/dalemusser/redlight/internal/app/system/httpjson"
	"github.com/dalemusser/redlight/internal/app/system/inputval"
)

// SetStatus handles POST /events/{id}/status with body
// {"status":"completed"|"cancelled"}.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
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

	var req statusRequest
	if err := httpjson.Read(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if res := inputval.Validate(req); res.HasErrors() {
		httpjson.Error(w, http.StatusUnprocessableEntity, res.First())
		return
	}

	to, err := eventstatus.Parse(req.Status)
	if err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, "status must be planned, completed or cancelled")
		return
	}

	ev, err := h.svc.SetStatus(r.Context(), act, id, to)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toEventResponse(ev))
}
