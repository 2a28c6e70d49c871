// internal/app/features/users/handler.go

// Package users serves the user administration API and profile photo
// uploads.
package users

import (
	"errors"
	"net/http"

	userstore "github.com/dalemusser/redlight/internal/app/store/users"
	"github.com/dalemusser/redlight/internal/app/system/authz"
	"github.com/dalemusser/redlight/internal/app/system/httpjson"
	"github.com/dalemusser/redlight/internal/app/system/inputval"
	"github.com/dalemusser/redlight/internal/app/system/media"
	"github.com/dalemusser/redlight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const maxPhotoBytes = 10 << 20 // 10 MB

// Handler serves the users API.
type Handler struct {
	users *userstore.Store
	files storage.Store
	log   *zap.Logger
}

// NewHandler constructs a users Handler. The storage store may be nil,
// which disables profile photo uploads.
func NewHandler(users *userstore.Store, files storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		users: users,
		files: files,
		log:   logger,
	}
}

// List handles GET /users. The route restricts this to admins; the
// listing backs participant selection when registering someone else.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	us, err := h.users.List(r.Context())
	if err != nil {
		h.log.Error("user list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"users": toUserResponses(us)})
}

// Create handles POST /users. Admin only.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Read(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if res := inputval.Validate(req); res.HasErrors() {
		httpjson.Error(w, http.StatusUnprocessableEntity, res.First())
		return
	}
	if req.Role != "" && !authz.ValidRole(req.Role) {
		httpjson.Error(w, http.StatusUnprocessableEntity, "role must be participant or admin")
		return
	}

	u, err := h.users.Create(r.Context(), models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Age:   req.Age,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusConflict, "a user with this email already exists")
			return
		}
		h.log.Error("user create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusCreated, toUserResponse(u))
}

// UploadPhoto handles POST /users/me/photo with a multipart form field
// named "photo". Users may only set their own profile photo.
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if h.files == nil {
		httpjson.Error(w, http.StatusNotImplemented, "photo uploads are not configured")
		return
	}
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	info, err := media.UploadUserPhoto(r.Context(), h.files, header.Filename, file, header.Size)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) {
			httpjson.Error(w, http.StatusUnprocessableEntity, "file type not allowed")
			return
		}
		h.log.Error("profile photo upload failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "upload failed")
		return
	}

	if err := h.users.SetPhotoRef(r.Context(), uid, info.Path); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.Error("photo ref update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"path": info.Path})
}
