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

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	svc    *service.DirectoryService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.DirectoryService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Login handles POST /api/v1/login.
// This is a boolean credential check, not a session or token issuer: no
// endpoint in the API is gated on it. That is the inherited contract.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if !h.svc.Authenticate(r.Context(), req.Username, req.Credential) {
		writeJSON(w, http.StatusUnauthorized, dto.LoginResponse{Acceso: false})
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{Acceso: true})
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.svc.CreateUser(r.Context(), req.Username, req.Credential); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_created", "username", req.Username)

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "user created"})
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Usernames(r.Context()))
}

// Delete handles DELETE /api/v1/users/{username}.
// Deleting a user also removes every occurrence of the username from the
// active pool, as part of the same atomic operation.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.svc.DeleteUser(r.Context(), username); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_deleted", "username", username)

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "user deleted"})
}

// handleServiceError maps service errors to HTTP responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		h.writeError(w, http.StatusBadRequest, "MISSING_CREDENTIALS", "Username and credential are required")
	case errors.Is(err, service.ErrUserExists):
		h.writeError(w, http.StatusConflict, "USER_EXISTS", "User already exists")
	case errors.Is(err, service.ErrAdminProtected):
		h.writeError(w, http.StatusForbidden, "ADMIN_PROTECTED", "The admin user cannot be deleted")
	case errors.Is(err, service.ErrUserNotFound):
		h.writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *UserHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
