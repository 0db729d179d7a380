package routes

import (
	"Inkwell/internal/api/handlers/blog"
	"Inkwell/internal/core/feed"
	"Inkwell/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterBlogRoutes registers blog CRUD and feed endpoints
func RegisterBlogRoutes(r chi.Router, postService posts.Service, feedService feed.Service) {
	handler := blog.NewHandler(postService)
	feedHandler := blog.NewFeedHandler(feedService)

	r.Route("/blogs", func(r chi.Router) {
		// Feed endpoints come before /{id} so chi does not swallow them
		// GET /blogs/feed?cursor=&size= - cursor pagination, newest first
		r.Get("/feed", feedHandler.GetFeed)
		// GET /blogs/paginated?page=&size= - offset pagination with totals
		r.Get("/paginated", feedHandler.GetPaginated)

		// GET /blogs/search-by-title?title=
		r.Get("/search-by-title", handler.SearchByTitle)
		// GET /blogs/author/{author}
		r.Get("/author/{author}", handler.ListByAuthor)

		// POST /blogs/create - requires X-User-Id
		r.Post("/create", handler.Create)
		// GET /blogs
		r.Get("/", handler.List)
		// GET /blogs/{id}
		r.Get("/{id}", handler.Get)
		// GET /blogs/{id}/display - post with author name/avatar resolved
		r.Get("/{id}/display", feedHandler.GetDisplay)
		// PUT /blogs/{id}
		r.Put("/{id}", handler.Update)
		// DELETE /blogs/{id}
		r.Delete("/{id}", handler.Delete)
	})
}
