// internal/app/features/events/mine.go
package events

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/system/httpjson"
)

// MineCreated handles GET /events/mine/created.
func (h *Handler) MineCreated(w http.ResponseWriter, r *http.Request) {
	act, ok := actor(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	events, err := h.svc.CreatedBy(r.Context(), act.ID)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"events": toEventResponses(events)})
}

// MineRegistered handles GET /events/mine/registered.
func (h *Handler) MineRegistered(w http.ResponseWriter, r *http.Request) {
	act, ok := actor(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	events, err := h.svc.RegisteredFor(r.Context(), act.ID)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"events": toEventResponses(events)})
}
