package handler

import (
	"net/http"
	"strconv"

	"github.com/quotedesk/quotedesk/internal/store"
)

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "ok",
	}
	writeJSON(w, http.StatusOK, response)
}

// Readyz is a readiness probe endpoint. All state is in-process, so the
// service is ready as soon as the aggregate exists; the checks report its
// current sizes for operators.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if h.store == nil {
		response := HealthResponse{
			Status: "unhealthy",
			Checks: map[string]string{"store": "not configured"},
		}
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	users, pool, pending, responses := h.store.Counts()
	checks["store"] = "ok"
	checks["users"] = strconv.Itoa(users)
	checks["active_agents"] = strconv.Itoa(pool)
	checks["pending_quotes"] = strconv.Itoa(pending)
	checks["stored_responses"] = strconv.Itoa(responses)

	response := HealthResponse{
		Status: "ok",
		Checks: checks,
	}
	writeJSON(w, http.StatusOK, response)
}
