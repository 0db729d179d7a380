// Package health exposes liveness of the service's two hard dependencies:
// the Mongo content store and the remote user service.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 2 * time.Second

// GrpcProber reports whether the user service answers.
type GrpcProber interface {
	Healthy(ctx context.Context) bool
}

type healthStatus struct {
	Status string `json:"status"`
}

// Handler serves the health endpoints
type Handler struct {
	mongo  *mongo.Client
	prober GrpcProber
}

// NewHandler creates a new health handler
func NewHandler(mongoClient *mongo.Client, prober GrpcProber) *Handler {
	return &Handler{mongo: mongoClient, prober: prober}
}

// Check handles GET /health. It reflects the content store only: the user
// service being down degrades the feed but does not take the service down.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.mongo.Ping(ctx, nil); err != nil {
		slog.Warn("health check: mongo unreachable", "err", err)
		writeStatus(w, http.StatusServiceUnavailable, "DOWN")
		return
	}
	writeStatus(w, http.StatusOK, "UP")
}

// CheckGrpc handles GET /health/grpc
func (h *Handler) CheckGrpc(w http.ResponseWriter, r *http.Request) {
	if !h.prober.Healthy(r.Context()) {
		writeStatus(w, http.StatusServiceUnavailable, "DOWN")
		return
	}
	writeStatus(w, http.StatusOK, "UP")
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(healthStatus{Status: status}); err != nil {
		slog.Error("failed to encode health response", "err", err)
	}
}
