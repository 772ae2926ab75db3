package domain

import (
	"context"
	"fmt"
	"time"
)

// CMS audit actions
const (
	CMSActionCreate  = "create"
	CMSActionUpdate  = "update"
	CMSActionDelete  = "delete"
	CMSActionPublish = "publish"
	CMSActionLock    = "lock"
	CMSActionUnlock  = "unlock"
	CMSActionLogin   = "login"
)

// CmsActivityLog is one append-only audit row per mutating admin action.
// It records actor, verb, resource and a raw snapshot of the triggering
// request. The log is pure observability: nothing at runtime reads it back.
type CmsActivityLog struct {
	ID           string                 `json:"id"`
	AdminID      string                 `json:"admin_id"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	Details      map[string]interface{} `json:"details,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ListCmsActivityLogsRequest represents query parameters for the audit trail
type ListCmsActivityLogsRequest struct {
	AdminID      *string
	ResourceType *string
	Limit        int
	Offset       int
}

func (r *ListCmsActivityLogsRequest) Validate() error {
	if r.Limit <= 0 {
		r.Limit = 50
	}
	if r.Limit > 200 {
		r.Limit = 200
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return nil
}

// Validate validates the log row
func (l *CmsActivityLog) Validate() error {
	if l.AdminID == "" {
		return fmt.Errorf("admin_id is required")
	}
	if l.Action == "" {
		return fmt.Errorf("action is required")
	}
	if l.ResourceType == "" {
		return fmt.Errorf("resource_type is required")
	}
	return nil
}

// CmsActivityLogRepository defines persistence methods for the audit trail
type CmsActivityLogRepository interface {
	Create(ctx context.Context, log *CmsActivityLog) error
	List(ctx context.Context, req *ListCmsActivityLogsRequest) ([]*CmsActivityLog, error)
}

// CmsActivityLogService exposes the audit trail to authenticated admins
type CmsActivityLogService interface {
	ListActivityLogs(ctx context.Context, token string, req *ListCmsActivityLogsRequest) ([]*CmsActivityLog, error)
}
