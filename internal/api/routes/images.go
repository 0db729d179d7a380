package routes

import (
	handlers "Inkwell/internal/api/handlers/images"
	"Inkwell/internal/core/images"

	"github.com/go-chi/chi/v5"
)

// RegisterImageRoutes registers image metadata endpoints
func RegisterImageRoutes(r chi.Router, imageService images.Service) {
	handler := handlers.NewHandler(imageService)

	r.Route("/images", func(r chi.Router) {
		// POST /images
		r.Post("/", handler.Create)
		// GET /images
		r.Get("/", handler.List)
		// GET /images/{id}
		r.Get("/{id}", handler.Get)
		// DELETE /images/{id}
		r.Delete("/{id}", handler.Delete)
	})
}
