// internal/app/features/events/handler.go
package events

import (
	"net/http"

	"github.com/dalemusser/redlight/internal/app/features/shared/apierr"
	"github.com/dalemusser/redlight/internal/app/lifecycle"
	userstore "github.com/dalemusser/redlight/internal/app/store/users"
	"github.com/dalemusser/redlight/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the events API.
type Handler struct {
	svc   *lifecycle.Service
	users *userstore.Store
	files storage.Store
	log   *zap.Logger
}

// NewHandler constructs an events Handler. The storage store may be
// nil, which disables photo uploads.
func NewHandler(svc *lifecycle.Service, users *userstore.Store, files storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		svc:   svc,
		users: users,
		files: files,
		log:   logger,
	}
}

func (h *Handler) writeErr(w http.ResponseWriter, err error) {
	apierr.Write(w, h.log, err)
}

// actor resolves the request's signed-in user into a lifecycle actor.
// The bool is false for unauthenticated requests.
func actor(r *http.Request) (lifecycle.Actor, bool) {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok {
		return lifecycle.Actor{}, false
	}
	return lifecycle.Actor{ID: uid, Role: role}, true
}

// eventID parses the {id} URL parameter.
func eventID(r *http.Request, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, param))
	return id, err == nil
}
