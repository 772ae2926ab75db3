package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Activity types recorded by the tracker
const (
	ActivityTypeSessionStart = "session_start"
	ActivityTypePageVisit    = "page_visit"
	ActivityTypeGuideView    = "guide_view"
	ActivityTypeStepComplete = "step_complete"
	ActivityTypeLogout       = "logout"
)

// Engagement levels derived from time spent on a page. Purely descriptive
// metadata, never used for access control.
const (
	EngagementLow    = "low"
	EngagementMedium = "medium"
	EngagementHigh   = "high"
)

// EngagementLevel classifies time spent on a page
func EngagementLevel(elapsed time.Duration) string {
	switch {
	case elapsed < 30*time.Second:
		return EngagementLow
	case elapsed < 120*time.Second:
		return EngagementMedium
	default:
		return EngagementHigh
	}
}

// UserActivity is one append-only tracked event. Rows are never updated or
// deleted.
type UserActivity struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"user_id"`
	ActivityType string                 `json:"activity_type"`
	Page         string                 `json:"page"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// TrackActivityRequest represents the API request to record one event.
// Events are independent fire-and-forget writes: consumers must sort by the
// event's own timestamp in metadata, not by arrival order.
type TrackActivityRequest struct {
	UserID       string                 `json:"user_id"`
	ActivityType string                 `json:"activity_type"`
	Page         string                 `json:"page"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

func (r *TrackActivityRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.ActivityType == "" {
		return fmt.Errorf("activity_type is required")
	}
	if len(r.ActivityType) > 50 {
		return fmt.Errorf("activity_type must be 50 characters or less")
	}
	if r.Metadata == nil {
		r.Metadata = make(map[string]interface{})
	}
	return nil
}

// ListActivitiesRequest represents query parameters for listing activities
type ListActivitiesRequest struct {
	UserID       string
	ActivityType *string
	Limit        int
	Offset       int
}

func (r *ListActivitiesRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
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

// UserSession is one row per browser session. The session id is generated on
// the client as "session-<epoch millis>-<random>"; the row is updated in
// place to mark logout and is never deleted.
type UserSession struct {
	SessionID    string     `json:"session_id"`
	UserID       string     `json:"user_id"`
	LoginTime    time.Time  `json:"login_time"`
	LastActivity time.Time  `json:"last_activity"`
	LogoutTime   *time.Time `json:"logout_time,omitempty"`
	IsActive     bool       `json:"is_active"`
}

// StartSessionRequest represents the API request to open a session
type StartSessionRequest struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

func (r *StartSessionRequest) Validate() error {
	if r.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if !strings.HasPrefix(r.SessionID, "session-") {
		return fmt.Errorf("session_id must have the session- prefix")
	}
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	return nil
}

// EndSessionRequest represents the API request to close a session
type EndSessionRequest struct {
	SessionID string `json:"session_id"`
}

func (r *EndSessionRequest) Validate() error {
	if r.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	return nil
}

// ActivityRepository defines persistence methods for the append-only event log
type ActivityRepository interface {
	Create(ctx context.Context, activity *UserActivity) error
	List(ctx context.Context, req *ListActivitiesRequest) ([]*UserActivity, error)
}

// SessionRepository defines persistence methods for sessions
type SessionRepository interface {
	Create(ctx context.Context, session *UserSession) error
	GetByID(ctx context.Context, sessionID string) (*UserSession, error)
	TouchLastActivity(ctx context.Context, sessionID string, at time.Time) error
	End(ctx context.Context, sessionID string, at time.Time) error
}

// ActivityService defines business logic for session and event ingestion
type ActivityService interface {
	StartSession(ctx context.Context, req *StartSessionRequest) (*UserSession, error)
	EndSession(ctx context.Context, req *EndSessionRequest) error
	TrackActivity(ctx context.Context, req *TrackActivityRequest) (*UserActivity, error)
	ListActivities(ctx context.Context, req *ListActivitiesRequest) ([]*UserActivity, error)
}
