package images

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"Inkwell/internal/core/images"
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
	case errors.Is(err, images.ErrNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Image not found")
	default:
		slog.Error("image service error", "err", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An unexpected error occurred")
	}
}
