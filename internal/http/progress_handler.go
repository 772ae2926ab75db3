package http

import (
	"encoding/json"
	"net/http"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// ProgressHandler handles HTTP requests related to onboarding progress
type ProgressHandler struct {
	service domain.ProgressService
	logger  logger.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service domain.ProgressService, logger logger.Logger) *ProgressHandler {
	return &ProgressHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the progress-related routes
func (h *ProgressHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/progress.get", h.handleGet)
	mux.HandleFunc("/api/progress.track", h.handleTrack)
}

func (h *ProgressHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		WriteJSONError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	summary, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		h.logger.WithField("user_id", userID).WithField("error", err.Error()).Error("Failed to get progress")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *ProgressHandler) handleTrack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.TrackProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	progress, err := h.service.TrackProgress(r.Context(), &req)
	if err != nil {
		h.logger.WithField("user_id", req.UserID).WithField("step_id", req.StepID).WithField("error", err.Error()).Error("Failed to track progress")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"progress": progress})
}
