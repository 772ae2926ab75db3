package http

import (
	"net/http"

	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// RootHandler serves the health endpoint and a version banner at the root
type RootHandler struct {
	version string
	logger  logger.Logger
}

// NewRootHandler creates a new root handler
func NewRootHandler(version string, logger logger.Logger) *RootHandler {
	return &RootHandler{
		version: version,
		logger:  logger,
	}
}

// RegisterRoutes registers the root and health routes
func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/", h.handleRoot)
}

func (h *RootHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}

func (h *RootHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteJSONError(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "venuelaunch-api",
		"version": h.version,
	})
}
