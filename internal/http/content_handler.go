package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/internal/http/middleware"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// ContentHandler handles HTTP requests for content types, items, versions
// and edit locks. All routes require a Bearer token; role checks beyond
// authentication live in the service.
type ContentHandler struct {
	service        domain.ContentService
	authMiddleware *middleware.CMSAuthMiddleware
	logger         logger.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	service domain.ContentService,
	authMiddleware *middleware.CMSAuthMiddleware,
	logger logger.Logger,
) *ContentHandler {
	return &ContentHandler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

// RegisterRoutes registers the content-related routes
func (h *ContentHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/cms/contentType.create", requireAuth(http.HandlerFunc(h.handleCreateType)))
	mux.Handle("/api/cms/contentType.list", requireAuth(http.HandlerFunc(h.handleListTypes)))
	mux.Handle("/api/cms/contentType.get", requireAuth(http.HandlerFunc(h.handleGetType)))

	mux.Handle("/api/cms/content.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/cms/content.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/cms/content.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/cms/content.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/cms/content.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/cms/content.publish", requireAuth(http.HandlerFunc(h.handlePublish)))

	mux.Handle("/api/cms/content.versions", requireAuth(http.HandlerFunc(h.handleListVersions)))
	mux.Handle("/api/cms/content.version", requireAuth(http.HandlerFunc(h.handleGetVersion)))

	mux.Handle("/api/cms/content.lock", requireAuth(http.HandlerFunc(h.handleLock)))
	mux.Handle("/api/cms/content.unlock", requireAuth(http.HandlerFunc(h.handleUnlock)))

	// Portal-facing read, no token: only published content is reachable
	mux.HandleFunc("/api/content.get", h.handlePublicGet)
}

func (h *ContentHandler) token(r *http.Request) string {
	token, _ := middleware.CMSTokenFromContext(r.Context())
	return token
}

func (h *ContentHandler) handlePublicGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	itemKey := r.URL.Query().Get("item_key")
	if itemKey == "" {
		WriteJSONError(w, "item_key is required", http.StatusBadRequest)
		return
	}

	item, err := h.service.GetPublishedContent(r.Context(), itemKey)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"content_item": item})
}

func (h *ContentHandler) handleCreateType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateContentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	contentType, err := h.service.CreateContentType(r.Context(), h.token(r), &req)
	if err != nil {
		h.logger.WithField("name", req.Name).WithField("error", err.Error()).Error("Failed to create content type")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"content_type": contentType})
}

func (h *ContentHandler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	types, err := h.service.ListContentTypes(r.Context(), h.token(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"content_types": types})
}

func (h *ContentHandler) handleGetType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	contentType, err := h.service.GetContentType(r.Context(), h.token(r), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"content_type": contentType})
}

func (h *ContentHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateContentItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	item, err := h.service.CreateContentItem(r.Context(), h.token(r), &req)
	if err != nil {
		h.logger.WithField("item_key", req.ItemKey).WithField("error", err.Error()).Error("Failed to create content item")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"content_item": item})
}

func (h *ContentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	item, err := h.service.GetContentItem(r.Context(), h.token(r), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"content_item": item})
}

func (h *ContentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.ListContentItemsRequest{}
	if v := r.URL.Query().Get("content_type_id"); v != "" {
		req.ContentTypeID = &v
	}
	if r.URL.Query().Get("published_only") == "true" {
		req.PublishedOnly = true
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

	items, err := h.service.ListContentItems(r.Context(), h.token(r), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"content_items": items})
}

func (h *ContentHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateContentItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	item, err := h.service.UpdateContentItem(r.Context(), h.token(r), &req)
	if err != nil {
		h.logger.WithField("content_item_id", req.ID).WithField("error", err.Error()).Error("Failed to update content item")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"content_item": item})
}

func (h *ContentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteContentItem(r.Context(), h.token(r), req.ID); err != nil {
		h.logger.WithField("content_item_id", req.ID).WithField("error", err.Error()).Error("Failed to delete content item")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *ContentHandler) handlePublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID      string `json:"id"`
		Publish bool   `json:"publish"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	item, err := h.service.PublishContentItem(r.Context(), h.token(r), req.ID, req.Publish)
	if err != nil {
		h.logger.WithField("content_item_id", req.ID).WithField("error", err.Error()).Error("Failed to publish content item")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"content_item": item})
}

func (h *ContentHandler) handleListVersions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentItemID := r.URL.Query().Get("content_item_id")
	if contentItemID == "" {
		WriteJSONError(w, "content_item_id is required", http.StatusBadRequest)
		return
	}

	versions, err := h.service.ListVersions(r.Context(), h.token(r), contentItemID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"versions": versions})
}

func (h *ContentHandler) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentItemID := r.URL.Query().Get("content_item_id")
	if contentItemID == "" {
		WriteJSONError(w, "content_item_id is required", http.StatusBadRequest)
		return
	}
	versionNumber, err := strconv.Atoi(r.URL.Query().Get("version_number"))
	if err != nil || versionNumber < 1 {
		WriteJSONError(w, "version_number must be a positive integer", http.StatusBadRequest)
		return
	}

	version, err := h.service.GetVersion(r.Context(), h.token(r), contentItemID, versionNumber)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"version": version})
}

func (h *ContentHandler) handleLock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ContentItemID string `json:"content_item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.ContentItemID == "" {
		WriteJSONError(w, "content_item_id is required", http.StatusBadRequest)
		return
	}

	lock, err := h.service.AcquireLock(r.Context(), h.token(r), req.ContentItemID)
	if err != nil {
		h.logger.WithField("content_item_id", req.ContentItemID).WithField("error", err.Error()).Warn("Failed to acquire content lock")
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"lock": lock})
}

func (h *ContentHandler) handleUnlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ContentItemID string `json:"content_item_id"`
		LockToken     string `json:"lock_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.ContentItemID == "" || req.LockToken == "" {
		WriteJSONError(w, "content_item_id and lock_token are required", http.StatusBadRequest)
		return
	}

	if err := h.service.ReleaseLock(r.Context(), h.token(r), req.ContentItemID, req.LockToken); err != nil {
		WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
