// internal/app/features/shared/apierr/apierr.go

// Package apierr maps lifecycle errors onto HTTP status codes so every
// feature responds consistently.
package apierr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/redlight/internal/app/lifecycle"
	"github.com/dalemusser/redlight/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Write sends the JSON error response for a lifecycle error. Unknown
// errors are logged and reported as a bare 500.
func Write(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "event not found")
	case errors.Is(err, lifecycle.ErrUnauthorized):
		httpjson.Error(w, http.StatusForbidden, "you do not have permission to do that")
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		// Checked before ErrEventUnavailable, which it wraps.
		httpjson.Error(w, http.StatusConflict, "status change is not allowed")
	case errors.Is(err, lifecycle.ErrEventUnavailable):
		httpjson.Error(w, http.StatusConflict, "event is not accepting registrations")
	case errors.Is(err, lifecycle.ErrEventFull):
		httpjson.Error(w, http.StatusConflict, "event is at capacity")
	case errors.Is(err, lifecycle.ErrAlreadyRegistered):
		httpjson.Error(w, http.StatusConflict, "you are already registered for this event")
	case errors.Is(err, lifecycle.ErrInvalidInput):
		httpjson.Error(w, http.StatusUnprocessableEntity, inputMessage(err))
	default:
		log.Error("unhandled error", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
	}
}

// inputMessage strips the sentinel prefix so clients see only the
// field-level detail.
func inputMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
