package http

import (
	"encoding/json"
	"net/http"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// VenueHandler handles HTTP requests for venues, team members and
// onboarding tasks
type VenueHandler struct {
	service domain.VenueService
	logger  logger.Logger
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(service domain.VenueService, logger logger.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the venue-related routes
func (h *VenueHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/venue.create", h.handleCreateVenue)
	mux.HandleFunc("/api/venue.list", h.handleListVenues)
	mux.HandleFunc("/api/venue.addMember", h.handleAddMember)
	mux.HandleFunc("/api/venue.listMembers", h.handleListMembers)
	mux.HandleFunc("/api/task.create", h.handleCreateTask)
	mux.HandleFunc("/api/task.list", h.handleListTasks)
	mux.HandleFunc("/api/task.update", h.handleUpdateTask)
}

func (h *VenueHandler) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if err != nil {
		h.logger.WithField("user_id", req.UserID).WithField("error", err.Error()).Error("Failed to create venue")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"venue": venue})
}

func (h *VenueHandler) handleListVenues(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	venues, err := h.service.ListVenues(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"venues": venues})
}

func (h *VenueHandler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var member domain.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := h.service.AddTeamMember(r.Context(), &member)
	if err != nil {
		h.logger.WithField("venue_id", member.VenueID).WithField("error", err.Error()).Error("Failed to add team member")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"member": created})
}

func (h *VenueHandler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	members, err := h.service.ListTeamMembers(r.Context(), r.URL.Query().Get("venue_id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}

func (h *VenueHandler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	task, err := h.service.CreateTask(r.Context(), &req)
	if err != nil {
		h.logger.WithField("venue_id", req.VenueID).WithField("error", err.Error()).Error("Failed to create task")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"task": task})
}

func (h *VenueHandler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tasks, err := h.service.ListTasks(r.Context(), r.URL.Query().Get("venue_id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (h *VenueHandler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	task, err := h.service.UpdateTask(r.Context(), &req)
	if err != nil {
		h.logger.WithField("task_id", req.ID).WithField("error", err.Error()).Error("Failed to update task")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}
