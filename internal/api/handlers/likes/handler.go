package likes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/likes"
)

const userIDHeader = "X-User-Id"

// Handler serves the like endpoints
type Handler struct {
	service likes.Service
}

// NewHandler creates a new like handler
func NewHandler(service likes.Service) *Handler {
	return &Handler{service: service}
}

// Toggle handles POST /likes/{blogId}. Liking an already-liked post
// removes the like; the response distinguishes the two outcomes.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	like, err := h.service.ToggleLike(r.Context(), r.Header.Get(userIDHeader), chi.URLParam(r, "blogId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if like == nil {
		writeJSON(w, http.StatusOK, map[string]bool{"liked": false})
		return
	}
	writeJSON(w, http.StatusCreated, like)
}

// Status handles GET /likes/{blogId}/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	liked, err := h.service.HasLiked(r.Context(), r.Header.Get(userIDHeader), chi.URLParam(r, "blogId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

// ListByBlog handles GET /likes/{blogId}
func (h *Handler) ListByBlog(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListByBlog(r.Context(), chi.URLParam(r, "blogId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteByBlog handles DELETE /likes/blog/{blogId}. Cleanup after a post
// is removed; reports how many likes went with it.
func (h *Handler) DeleteByBlog(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.DeleteByBlog(r.Context(), chi.URLParam(r, "blogId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// Count handles GET /likes/{blogId}/count
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountByBlog(r.Context(), chi.URLParam(r, "blogId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}
