package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quotedesk/quotedesk/internal/handler/dto"
	"github.com/quotedesk/quotedesk/internal/service"
)

// QuoteHandler handles HTTP requests for quote operations.
type QuoteHandler struct {
	svc    *service.QuoteService
	logger *slog.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(svc *service.QuoteService, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		svc:    svc,
		logger: logger,
	}
}

// Submit handles POST /api/v1/quotes.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	q, err := h.svc.Submit(r.Context(), req.Plate)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("quote_submitted",
		"quote_id", q.ID,
		"plate", q.Plate,
		"assigned_agent", q.AssignedAgent,
		"assigned", q.Assigned(),
	)

	writeJSON(w, http.StatusOK, dto.SubmitQuoteResponse{
		Status:        "ok",
		AssignedAgent: q.AssignedAgent,
	})
}

// ListPending handles GET /api/v1/quotes/pending.
// The requesting user comes from the "user" query parameter; the admin sees
// every pending record, anyone else only their own assignments.
func (h *QuoteHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	requestingUser := r.URL.Query().Get("user")

	records, err := h.svc.ListPending(r.Context(), requestingUser)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// Respond handles POST /api/v1/quotes/respond.
func (h *QuoteHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req dto.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.svc.Respond(r.Context(), req.Plate, req.Amount, req.Summary); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("quote_responded",
		"plate", req.Plate,
		"amount", req.Amount,
	)

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "response recorded"})
}

// PollResponse handles GET /api/v1/quotes/response/{plate}.
// Absence of a response is a normal outcome and maps to 204 No Content.
func (h *QuoteHandler) PollResponse(w http.ResponseWriter, r *http.Request) {
	plate := chi.URLParam(r, "plate")

	resp, ok := h.svc.LookupResponse(r.Context(), plate)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQuoteResponseBody(resp))
}

// Clear handles POST /api/v1/quotes/clear.
func (h *QuoteHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearPending(r.Context())

	h.logger.Info("pending_cleared")

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "pending cleared"})
}

// handleServiceError maps service errors to HTTP responses.
func (h *QuoteHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingPlate):
		h.writeError(w, http.StatusBadRequest, "MISSING_PLATE", "Plate is required")
	case errors.Is(err, service.ErrMissingRequester):
		h.writeError(w, http.StatusBadRequest, "MISSING_USER", "Requesting user is required")
	case errors.Is(err, service.ErrIncompleteResponse):
		h.writeError(w, http.StatusBadRequest, "INCOMPLETE_RESPONSE", "Plate, amount and summary are required")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *QuoteHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
