// internal/app/features/events/list.go
package events

import (
	"net/http"
	"time"

	eventstore "github.com/dalemusser/redlight/internal/app/store/events"
	"github.com/dalemusser/redlight/internal/app/system/httpjson"
	"github.com/dalemusser/redlight/internal/app/system/normalize"
)

// List handles GET /events?sport=&date=. Sport matches as a
// case-insensitive substring; date is a YYYY-MM-DD calendar day.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := eventstore.Filter{
		Sport: normalize.QueryParam(r.URL.Query().Get("sport")),
	}
	if raw := normalize.QueryParam(r.URL.Query().Get("date")); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httpjson.Error(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
			return
		}
		f.Date = day
	}

	events, err := h.svc.ListVisible(r.Context(), f)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"events": toEventResponses(events)})
}

// SportTypes handles GET /events/sports.
func (h *Handler) SportTypes(w http.ResponseWriter, r *http.Request) {
	sports, err := h.svc.SportTypes(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	if sports == nil {
		sports = []string{}
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"sport_types": sports})
}
