package http

import (
	"net/http"
	"strconv"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/internal/http/middleware"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// CmsLogHandler exposes the append-only admin audit trail
type CmsLogHandler struct {
	service        domain.CmsActivityLogService
	authMiddleware *middleware.CMSAuthMiddleware
	logger         logger.Logger
}

// NewCmsLogHandler creates a new audit log handler
func NewCmsLogHandler(
	service domain.CmsActivityLogService,
	authMiddleware *middleware.CMSAuthMiddleware,
	logger logger.Logger,
) *CmsLogHandler {
	return &CmsLogHandler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

// RegisterRoutes registers the audit log routes
func (h *CmsLogHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()
	mux.Handle("/api/cms/cmsLog.list", requireAuth(http.HandlerFunc(h.handleList)))
}

func (h *CmsLogHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token, _ := middleware.CMSTokenFromContext(r.Context())

	req := &domain.ListCmsActivityLogsRequest{}
	if v := r.URL.Query().Get("admin_id"); v != "" {
		req.AdminID = &v
	}
	if v := r.URL.Query().Get("resource_type"); v != "" {
		req.ResourceType = &v
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

	logs, err := h.service.ListActivityLogs(r.Context(), token, req)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list cms activity logs")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": logs})
}
