// Package tracker is a small client SDK for the activity tracking API. It is
// deliberately forgiving: tracking is telemetry, so every failure is logged
// and swallowed rather than surfaced to the caller's flow.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/crypto"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// SignatureHeader carries the HMAC-SHA256 signature of the request body when
// the tracker is configured with a signing secret.
const SignatureHeader = "X-Signature"

// Tracker posts session and activity events to the API. Safe for concurrent
// use. One Tracker tracks one user session at a time.
type Tracker struct {
	apiURL        string
	httpClient    *http.Client
	logger        logger.Logger
	signingSecret string

	mu            sync.Mutex
	userID        string
	sessionID     string
	currentPage   string
	pageEnteredAt time.Time

	// overridable in tests
	now func() time.Time
}

// Option configures a Tracker
type Option func(*Tracker)

// WithSigningSecret makes the tracker HMAC-sign every request body, so the
// server can tell SDK-originated events from forged ones.
func WithSigningSecret(secret string) Option {
	return func(t *Tracker) {
		t.signingSecret = secret
	}
}

// New creates a tracker pointed at the given API base URL
func New(apiURL string, logger logger.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		apiURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// generateSessionID builds a client-side session id: a session- prefix, the
// current epoch millis and a random suffix.
func (t *Tracker) generateSessionID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("session-%d-%s", t.now().UnixMilli(), suffix)
}

// StartSession opens a session for the user. Failure is logged but the
// session id is kept locally so subsequent events still carry it.
func (t *Tracker) StartSession(ctx context.Context, userID string) string {
	t.mu.Lock()
	t.userID = userID
	t.sessionID = t.generateSessionID()
	t.currentPage = ""
	sessionID := t.sessionID
	t.mu.Unlock()

	payload := map[string]interface{}{
		"session_id": sessionID,
		"user_id":    userID,
	}
	if err := t.post(ctx, "/api/session.start", payload); err != nil {
		t.logger.WithField("error", err.Error()).Warn("Failed to start tracking session")
	}

	t.TrackActivity(ctx, domain.ActivityTypeSessionStart, "", nil)

	return sessionID
}

// TrackActivity posts one event. Without an active session the event is
// dropped with a warning. Never returns an error.
func (t *Tracker) TrackActivity(ctx context.Context, activityType, page string, metadata map[string]interface{}) {
	t.mu.Lock()
	userID := t.userID
	sessionID := t.sessionID
	t.mu.Unlock()

	if sessionID == "" {
		t.logger.WithField("activity_type", activityType).Warn("No active session, dropping activity")
		return
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	metadata["session_id"] = sessionID
	metadata["timestamp"] = t.now().Format(time.RFC3339Nano)

	payload := map[string]interface{}{
		"user_id":       userID,
		"activity_type": activityType,
		"page":          page,
		"metadata":      metadata,
	}
	if err := t.post(ctx, "/api/activity.track", payload); err != nil {
		t.logger.WithField("activity_type", activityType).WithField("error", err.Error()).Warn("Failed to track activity")
	}
}

// TrackPageVisit records navigation: a page_exit for the previous page with
// time-on-page and engagement level, then a page_enter for the new one.
func (t *Tracker) TrackPageVisit(ctx context.Context, page string) {
	t.mu.Lock()
	previousPage := t.currentPage
	enteredAt := t.pageEnteredAt
	now := t.now()
	t.currentPage = page
	t.pageEnteredAt = now
	t.mu.Unlock()

	if previousPage != "" {
		elapsed := now.Sub(enteredAt)
		t.TrackActivity(ctx, domain.ActivityTypePageVisit, previousPage, map[string]interface{}{
			"action":           "page_exit",
			"time_on_page_ms":  elapsed.Milliseconds(),
			"engagement_level": domain.EngagementLevel(elapsed),
		})
	}

	t.TrackActivity(ctx, domain.ActivityTypePageVisit, page, map[string]interface{}{
		"action": "page_enter",
	})
}

// TrackGuideView records an interaction with one of the interactive guides
func (t *Tracker) TrackGuideView(ctx context.Context, guideType, action string) {
	t.mu.Lock()
	page := t.currentPage
	t.mu.Unlock()

	t.TrackActivity(ctx, domain.ActivityTypeGuideView, page, map[string]interface{}{
		"guide_type": guideType,
		"action":     action,
	})
}

// TrackStepComplete records an onboarding step completion event
func (t *Tracker) TrackStepComplete(ctx context.Context, stepID, stepType string) {
	t.mu.Lock()
	page := t.currentPage
	t.mu.Unlock()

	t.TrackActivity(ctx, domain.ActivityTypeStepComplete, page, map[string]interface{}{
		"step_id":   stepID,
		"step_type": stepType,
	})
}

// EndSession emits a final page_exit for the current page, a logout event
// and closes the session server-side. Best-effort all the way down.
func (t *Tracker) EndSession(ctx context.Context) {
	t.mu.Lock()
	sessionID := t.sessionID
	currentPage := t.currentPage
	enteredAt := t.pageEnteredAt
	now := t.now()
	t.mu.Unlock()

	if sessionID == "" {
		return
	}

	if currentPage != "" {
		elapsed := now.Sub(enteredAt)
		t.TrackActivity(ctx, domain.ActivityTypePageVisit, currentPage, map[string]interface{}{
			"action":           "page_exit",
			"time_on_page_ms":  elapsed.Milliseconds(),
			"engagement_level": domain.EngagementLevel(elapsed),
		})
	}

	t.TrackActivity(ctx, domain.ActivityTypeLogout, currentPage, nil)

	if err := t.post(ctx, "/api/session.end", map[string]interface{}{"session_id": sessionID}); err != nil {
		t.logger.WithField("session_id", sessionID).WithField("error", err.Error()).Warn("Failed to end tracking session")
	}

	t.mu.Lock()
	t.sessionID = ""
	t.currentPage = ""
	t.mu.Unlock()
}

// SessionID returns the current session id, empty when no session is active
func (t *Tracker) SessionID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sessionID
}

func (t *Tracker) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.signingSecret != "" {
		req.Header.Set(SignatureHeader, crypto.ComputeHMAC256(body, t.signingSecret))
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
