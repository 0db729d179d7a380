package routes

import (
	"Inkwell/internal/api/handlers/health"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterHealthRoutes registers the health endpoints
func RegisterHealthRoutes(r chi.Router, mongoClient *mongo.Client, prober health.GrpcProber) {
	handler := health.NewHandler(mongoClient, prober)

	// GET /health - content store reachability
	r.Get("/health", handler.Check)
	// GET /health/grpc - user service reachability
	r.Get("/health/grpc", handler.CheckGrpc)
}
