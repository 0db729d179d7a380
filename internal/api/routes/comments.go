package routes

import (
	handlers "Inkwell/internal/api/handlers/comments"
	"Inkwell/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints
func RegisterCommentRoutes(r chi.Router, commentService comments.Service) {
	handler := handlers.NewHandler(commentService)

	r.Route("/comments", func(r chi.Router) {
		// POST /comments - requires X-User-Id
		r.Post("/", handler.Create)
		// GET /comments/blog/{blogId} - all comments on a post, oldest first
		r.Get("/blog/{blogId}", handler.ListByBlog)
		// GET /comments/{id}
		r.Get("/{id}", handler.Get)
		// PUT /comments/{id}
		r.Put("/{id}", handler.Update)
		// DELETE /comments/{id}
		r.Delete("/{id}", handler.Delete)
	})
}
