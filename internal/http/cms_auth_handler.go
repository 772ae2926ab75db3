package http

import (
	"encoding/json"
	"net/http"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// CMSAuthHandler handles admin authentication for the CMS
type CMSAuthHandler struct {
	service domain.CMSAuthService
	logger  logger.Logger
}

// NewCMSAuthHandler creates a new CMS auth handler
func NewCMSAuthHandler(service domain.CMSAuthService, logger logger.Logger) *CMSAuthHandler {
	return &CMSAuthHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the CMS auth routes. Login is the only CMS route
// reachable without a Bearer token.
func (h *CMSAuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/cms/cmsAuth.login", h.handleLogin)
}

func (h *CMSAuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CMSLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
