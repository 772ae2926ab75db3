package domain

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Onboarding step identifiers. The catalogue is fixed: the client reports
// completions only for these ids.
const (
	StepAccountSetup         = "account_setup"
	StepViewedBookingsGuide  = "viewed_bookings_guide"
	StepViewedLoyaltyGuide   = "viewed_loyalty_guide"
	StepViewedMarketingGuide = "viewed_marketing_guide"
	StepWifiConfigured       = "wifi_configured"
	StepGoLive               = "go_live"
)

// OnboardingStep is one named milestone in the fixed progress catalogue
type OnboardingStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// OnboardingSteps is the static ordered step catalogue
var OnboardingSteps = []OnboardingStep{
	{ID: StepAccountSetup, Title: "Set up your account", Description: "Complete your venue profile and team details", Icon: "user", Category: "setup"},
	{ID: StepViewedBookingsGuide, Title: "Explore bookings", Description: "Walk through the bookings guide", Icon: "calendar", Category: "guides"},
	{ID: StepViewedLoyaltyGuide, Title: "Explore loyalty", Description: "Walk through the loyalty guide", Icon: "star", Category: "guides"},
	{ID: StepViewedMarketingGuide, Title: "Explore marketing", Description: "Walk through the marketing guide", Icon: "megaphone", Category: "guides"},
	{ID: StepWifiConfigured, Title: "Configure guest WiFi", Description: "Connect your venue WiFi to the platform", Icon: "wifi", Category: "setup"},
	{ID: StepGoLive, Title: "Go live", Description: "Launch your venue on the platform", Icon: "rocket", Category: "launch"},
}

// IsValidStepID reports whether the step id belongs to the fixed catalogue
func IsValidStepID(stepID string) bool {
	for _, s := range OnboardingSteps {
		if s.ID == stepID {
			return true
		}
	}
	return false
}

// OnboardingProgress is one (user, step) row. Created on first interaction,
// updated in place on subsequent completions.
type OnboardingProgress struct {
	UserID      string                 `json:"user_id"`
	StepID      string                 `json:"step_id"`
	Completed   bool                   `json:"completed"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// StepStatus pairs a catalogue step with its persisted completion state.
// An absent progress row means "not completed"; there is no unknown state.
type StepStatus struct {
	Step        OnboardingStep `json:"step"`
	Completed   bool           `json:"completed"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// ProgressSummary is the aggregate view returned to the client
type ProgressSummary struct {
	UserID            string       `json:"user_id"`
	Steps             []StepStatus `json:"steps"`
	CompletedCount    int          `json:"completed_count"`
	TotalCount        int          `json:"total_count"`
	CompletionPercent int          `json:"completion_percent"`
}

// CompletionPercent computes round(100 * completed / total) for display
func CompletionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// TrackProgressRequest represents the API request to mark a step complete
type TrackProgressRequest struct {
	UserID   string                 `json:"user_id"`
	StepID   string                 `json:"step_id"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (r *TrackProgressRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.StepID == "" {
		return fmt.Errorf("step_id is required")
	}
	if !IsValidStepID(r.StepID) {
		return fmt.Errorf("step_id '%s' is not in the onboarding catalogue", r.StepID)
	}
	return nil
}

// ProgressRepository defines persistence methods
type ProgressRepository interface {
	Get(ctx context.Context, userID, stepID string) (*OnboardingProgress, error)
	ListByUser(ctx context.Context, userID string) ([]*OnboardingProgress, error)
	Upsert(ctx context.Context, progress *OnboardingProgress) error
}

// ProgressService defines business logic
type ProgressService interface {
	TrackProgress(ctx context.Context, req *TrackProgressRequest) (*OnboardingProgress, error)
	GetProgress(ctx context.Context, userID string) (*ProgressSummary, error)
}
