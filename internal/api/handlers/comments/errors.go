package comments

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"Inkwell/internal/core/comments"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiError{Error: errorType, Message: message}); err != nil {
		slog.Error("failed to encode error response", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case comments.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, comments.ErrMissingUser):
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "X-User-Id header is required")
	case errors.Is(err, comments.ErrNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Comment not found")
	default:
		slog.Error("comment service error", "err", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An unexpected error occurred")
	}
}
