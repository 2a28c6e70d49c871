// internal/app/features/events/export.go
package events

import (
	"net/http"
	"time"

	"github.com/dalemusser/redlight/internal/app/system/httpjson"
	"github.com/dalemusser/redlight/internal/app/system/ical"
)

// Export handles GET /events/{id}/export, returning the event as an
// iCalendar attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
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

	body := ical.Render(ev, time.Now().UTC())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ical.Filename(ev)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
