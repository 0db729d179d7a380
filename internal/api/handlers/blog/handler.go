package blog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/posts"
)

// userIDHeader carries the caller identity set by the API gateway.
// Authentication itself happens upstream; this service trusts the header.
const userIDHeader = "X-User-Id"

// Handler serves the blog CRUD endpoints
type Handler struct {
	service posts.Service
}

// NewHandler creates a new blog handler
func NewHandler(service posts.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /blogs/create
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if strings.TrimSpace(userID) == "" {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "X-User-Id header is required")
		return
	}

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Malformed request body")
		return
	}

	post, err := h.service.CreatePost(r.Context(), req, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// Get handles GET /blogs/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// List handles GET /blogs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// ListByAuthor handles GET /blogs/author/{author}
func (h *Handler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListByAuthor(r.Context(), chi.URLParam(r, "author"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// SearchByTitle handles GET /blogs/search-by-title?title=
func (h *Handler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.SearchByTitle(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Update handles PUT /blogs/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Malformed request body")
		return
	}

	post, err := h.service.UpdatePost(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /blogs/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
