// internal/app/features/events/view.go
package events

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/system/httpjson"
)

// View handles GET /events/{id}.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r, "id")
	if !ok {
		httpjson.Error(w, http.StatusNotFound, "event not found")
		return
	}

	ev, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toEventResponse(ev))
}
