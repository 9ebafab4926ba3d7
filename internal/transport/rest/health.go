package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthStatus string

const (
	HealthHealthy HealthStatus = "healthy"
)

type HealthResponse struct {
	Status     HealthStatus          `json:"status"`
	CheckedAt  time.Time             `json:"checked_at"`
	Components map[string]CheckEntry `json:"components"`
}

type CheckEntry struct {
	Status    HealthStatus   `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	CheckedAt time.Time      `json:"checked_at"`
}

// StoreStats is the slice of the user store the health endpoint needs.
type StoreStats interface {
	Count() int
}

type HealthHandler struct {
	store StoreStats
}

func NewHealthHandler(store StoreStats) *HealthHandler {
	return &HealthHandler{store: store}
}

// pingHandler just says the service is up.
func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "OK"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// healthCheckHandler reports on the in-memory store. With no external
// dependencies the store is always reachable, so this is 200 by
// construction; the user count is still useful operational signal.
func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	entry := CheckEntry{
		Status:    HealthHealthy,
		CheckedAt: now,
		Details:   map[string]any{"users": h.store.Count()},
	}

	resp := HealthResponse{
		Status:     HealthHealthy,
		CheckedAt:  now,
		Components: map[string]CheckEntry{"store": entry},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
