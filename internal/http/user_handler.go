package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// UserHandler handles HTTP requests related to portal users
type UserHandler struct {
	service domain.UserService
	logger  logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service domain.UserService, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the user-related routes
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/user.signIn", h.handleSignIn)
	mux.HandleFunc("/api/user.getByExternalAuth", h.handleGetByExternalAuth)
	mux.HandleFunc("/api/user.update", h.handleUpdate)
	mux.HandleFunc("/api/user.list", h.handleList)
}

// handleSignIn reconciles an external-auth sign-in with the users table,
// creating the row on first contact
func (h *UserHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := h.service.GetOrCreateUser(r.Context(), &req)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to sign in user")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandler) handleGetByExternalAuth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	externalAuthID := r.URL.Query().Get("external_auth_id")
	if externalAuthID == "" {
		WriteJSONError(w, "external_auth_id is required", http.StatusBadRequest)
		return
	}

	user, err := h.service.GetUserByExternalAuthID(r.Context(), externalAuthID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), &req)
	if err != nil {
		h.logger.WithField("user_id", req.ID).WithField("error", err.Error()).Error("Failed to update user")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.ListUsersRequest{}
	if v := r.URL.Query().Get("is_active"); v != "" {
		active := v == "true"
		req.IsActive = &active
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Offset = n
		}
	}

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}
