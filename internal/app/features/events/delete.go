// internal/app/features/events/delete.go
package events

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/system/httpjson"
)

// Delete handles DELETE /events/{id}. The event is soft-deleted and
// disappears from every listing and lookup.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Delete(r.Context(), act, id); err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "deleted"})
}
