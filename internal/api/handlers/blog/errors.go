package blog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"Inkwell/internal/core/feed"
	"Inkwell/internal/core/posts"
)

// apiError is the JSON error payload shared by all handlers
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
		// Headers already sent; nothing left but to log it
		slog.Error("failed to encode response", "err", err)
	}
}

// handleServiceError maps post/feed service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err) || feed.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, feed.ErrInvalidCursor):
		writeError(w, http.StatusBadRequest, "InvalidCursor", "The provided cursor is invalid")
	case errors.Is(err, posts.ErrInvalidUser):
		writeError(w, http.StatusBadRequest, "InvalidUserId", "User id must be a UUID")
	case errors.Is(err, posts.ErrMissingUser):
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "X-User-Id header is required")
	case errors.Is(err, posts.ErrNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
	default:
		slog.Error("blog service error", "err", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An unexpected error occurred")
	}
}
