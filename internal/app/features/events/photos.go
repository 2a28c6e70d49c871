// internal/app/features/events/photos.go
package events

import (
	"errors"
	"net/http"

	"github.com/dalemusser/redlight/internal/app/policy/eventpolicy"
	"github.com/dalemusser/redlight/internal/app/system/httpjson"
	"github.com/dalemusser/redlight/internal/app/system/media"
	"go.uber.org/zap"
)

const maxPhotoBytes = 10 << 20 // 10 MB

// UploadPhoto handles POST /events/{id}/photos with a multipart form
// field named "photo". Only the creator or an admin may attach photos.
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if h.files == nil {
		httpjson.Error(w, http.StatusNotImplemented, "photo uploads are not configured")
		return
	}
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
	if !eventpolicy.CanMutateRequest(r, ev) {
		httpjson.Error(w, http.StatusForbidden, "you do not have permission to do that")
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

	info, err := media.UploadEventPhoto(r.Context(), h.files, header.Filename, file, header.Size)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) {
			httpjson.Error(w, http.StatusUnprocessableEntity, "file type not allowed")
			return
		}
		h.log.Error("photo upload failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "upload failed")
		return
	}

	if err := h.svc.AttachPhoto(r.Context(), id, info.Path); err != nil {
		h.writeErr(w, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]string{"path": info.Path})
}
