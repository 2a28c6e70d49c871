// internal/app/features/events/register.go
package events

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/system/httpjson"
)

// Register handles POST /events/{id}/register. The signed-in user joins
// the event's participant set, capacity permitting.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Register(r.Context(), act, id); err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "registered"})
}

// Unregister handles POST /events/{id}/unregister. Withdrawing when not
// registered succeeds quietly.
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Unregister(r.Context(), act, id); err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "unregistered"})
}
