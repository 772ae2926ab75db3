package http

import (
	"encoding/json"
	"net/http"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// GuideHandler handles HTTP requests for interactive guide configuration
type GuideHandler struct {
	service domain.GuideService
	logger  logger.Logger
}

// NewGuideHandler creates a new guide handler
func NewGuideHandler(service domain.GuideService, logger logger.Logger) *GuideHandler {
	return &GuideHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the guide-related routes
func (h *GuideHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/guide.get", h.handleGet)
	mux.HandleFunc("/api/guide.list", h.handleList)
	mux.HandleFunc("/api/guide.update", h.handleUpdate)
}

func (h *GuideHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	guideType := r.URL.Query().Get("guide_type")
	if guideType == "" {
		WriteJSONError(w, "guide_type is required", http.StatusBadRequest)
		return
	}

	guide, err := h.service.GetGuide(r.Context(), guideType)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"guide": guide})
}

func (h *GuideHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	guides, err := h.service.ListGuides(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list guides")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"guides": guides})
}

func (h *GuideHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateGuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	guide, err := h.service.UpdateGuide(r.Context(), &req)
	if err != nil {
		h.logger.WithField("guide_type", req.GuideType).WithField("error", err.Error()).Error("Failed to update guide")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"guide": guide})
}
