// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/redlight/internal/app/system/auth"
	"github.com/dalemusser/redlight/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the users API. The listing and user
// creation are admin only; any signed-in user may set their own photo.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(authz.RoleAdmin))

		r.Get("/", h.List)
		r.Post("/", h.Create)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSignedIn)

		r.Post("/me/photo", h.UploadPhoto)
	})

	return r
}
