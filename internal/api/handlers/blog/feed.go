package blog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/feed"
)

// FeedHandler serves the paginated feed endpoints
type FeedHandler struct {
	service feed.Service
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service feed.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// GetFeed handles GET /blogs/feed?cursor=&size=
// The cursor is opaque; clients pass back nextCursor from the previous
// page. A malformed cursor is a 400, never a silent restart from the top.
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	size, err := intParam(r, "size", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "size must be an integer")
		return
	}

	page, err := h.service.GetFeed(r.Context(), r.URL.Query().Get("cursor"), size)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetPaginated handles GET /blogs/paginated?page=&size=
func (h *FeedHandler) GetPaginated(w http.ResponseWriter, r *http.Request) {
	pageNum, err := intParam(r, "page", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "page must be an integer")
		return
	}
	size, err := intParam(r, "size", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "size must be an integer")
		return
	}

	resp, err := h.service.GetPage(r.Context(), pageNum, size)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetDisplay handles GET /blogs/{id}/display: one post with its author
// resolved, the enriched counterpart of GET /blogs/{id}.
func (h *FeedHandler) GetDisplay(w http.ResponseWriter, r *http.Request) {
	display, err := h.service.GetDisplay(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, display)
}

func intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
