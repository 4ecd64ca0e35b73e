package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quotedesk/quotedesk/internal/handler/dto"
	"github.com/quotedesk/quotedesk/internal/service"
)

// AgentHandler handles HTTP requests for the active agent pool.
type AgentHandler struct {
	svc    *service.DirectoryService
	logger *slog.Logger
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(svc *service.DirectoryService, logger *slog.Logger) *AgentHandler {
	return &AgentHandler{
		svc:    svc,
		logger: logger,
	}
}

// SetActive handles PUT /api/v1/agents/active.
// The pool is replaced wholesale; order and duplicates are preserved. A
// payload naming a user missing from the directory is rejected and the
// previous pool stays in place.
func (h *AgentHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req dto.SetActiveAgentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.svc.SetActiveAgents(r.Context(), req.Agents); err != nil {
		if errors.Is(err, service.ErrUnknownAgent) {
			h.writeError(w, http.StatusBadRequest, "UNKNOWN_AGENT", "Every agent must exist in the user directory")
			return
		}
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("active_agents_set", "count", len(req.Agents))

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "active agents updated"})
}

// GetActive handles GET /api/v1/agents/active.
func (h *AgentHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ActiveAgents(r.Context()))
}

// writeError writes an error response.
func (h *AgentHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
