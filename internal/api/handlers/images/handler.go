package images

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/images"
)

// Handler serves the image metadata endpoints
type Handler struct {
	service images.Service
}

// NewHandler creates a new image handler
func NewHandler(service images.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /images
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req images.CreateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Malformed request body")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "url must not be empty")
		return
	}

	image, err := h.service.CreateImage(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

// Get handles GET /images/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	image, err := h.service.GetImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

// List handles GET /images
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListImages(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Delete handles DELETE /images/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteImage(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
