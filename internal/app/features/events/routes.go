// internal/app/features/events/routes.go
package events

import (
	"github.com/dalemusser/redlight/internal/app/system/auth"
	"github.com/dalemusser/redlight/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the events API. Reads are public;
// mutations require a signed-in user and are rate limited per client IP.
func Routes(h *Handler, writeLimiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/sports", h.SportTypes)
	r.Get("/{id}", h.View)
	r.Get("/{id}/participants", h.Participants)
	r.Get("/{id}/export", h.Export)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSignedIn)
		if writeLimiter != nil {
			r.Use(ratelimit.Middleware(writeLimiter))
		}

		r.Post("/", h.Create)
		r.Patch("/{id}", h.Edit)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/status", h.SetStatus)
		r.Post("/{id}/register", h.Register)
		r.Post("/{id}/unregister", h.Unregister)
		r.Post("/{id}/participants/add", h.AddParticipant)
		r.Post("/{id}/participants/remove", h.RemoveParticipant)
		r.Post("/{id}/photos", h.UploadPhoto)

		r.Get("/mine/created", h.MineCreated)
		r.Get("/mine/registered", h.MineRegistered)
	})

	return r
}
