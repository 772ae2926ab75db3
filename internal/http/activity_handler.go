package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// ActivityHandler handles HTTP requests for sessions and the activity
// event log
type ActivityHandler struct {
	service domain.ActivityService
	logger  logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service domain.ActivityService, logger logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the session and activity routes
func (h *ActivityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/session.start", h.handleStartSession)
	mux.HandleFunc("/api/session.end", h.handleEndSession)
	mux.HandleFunc("/api/activity.track", h.handleTrack)
	mux.HandleFunc("/api/activity.list", h.handleList)
}

func (h *ActivityHandler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	session, err := h.service.StartSession(r.Context(), &req)
	if err != nil {
		h.logger.WithField("session_id", req.SessionID).WithField("error", err.Error()).Error("Failed to start session")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"session": session})
}

func (h *ActivityHandler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.EndSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.service.EndSession(r.Context(), &req); err != nil {
		h.logger.WithField("session_id", req.SessionID).WithField("error", err.Error()).Error("Failed to end session")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *ActivityHandler) handleTrack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.TrackActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	activity, err := h.service.TrackActivity(r.Context(), &req)
	if err != nil {
		h.logger.WithField("user_id", req.UserID).WithField("error", err.Error()).Error("Failed to track activity")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"activity": activity})
}

func (h *ActivityHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.ListActivitiesRequest{
		UserID: r.URL.Query().Get("user_id"),
	}
	if v := r.URL.Query().Get("activity_type"); v != "" {
		req.ActivityType = &v
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

	activities, err := h.service.ListActivities(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"activities": activities})
}
