package routes

import (
	handlers "Inkwell/internal/api/handlers/likes"
	"Inkwell/internal/core/likes"

	"github.com/go-chi/chi/v5"
)

// RegisterLikeRoutes registers like endpoints
func RegisterLikeRoutes(r chi.Router, likeService likes.Service) {
	handler := handlers.NewHandler(likeService)

	r.Route("/likes", func(r chi.Router) {
		// POST /likes/{blogId} - toggle; requires X-User-Id
		r.Post("/{blogId}", handler.Toggle)
		// DELETE /likes/blog/{blogId} - remove all likes on a post
		r.Delete("/blog/{blogId}", handler.DeleteByBlog)
		// GET /likes/{blogId}
		r.Get("/{blogId}", handler.ListByBlog)
		// GET /likes/{blogId}/count
		r.Get("/{blogId}/count", handler.Count)
		// GET /likes/{blogId}/status - requires X-User-Id
		r.Get("/{blogId}/status", handler.Status)
	})
}
