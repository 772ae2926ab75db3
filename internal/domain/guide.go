package domain

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Guide types
const (
	GuideTypeBookings  = "bookings"
	GuideTypeLoyalty   = "loyalty"
	GuideTypeMarketing = "marketing"
)

// ValidGuideTypes is the list of all valid guide types
var ValidGuideTypes = []string{
	GuideTypeBookings,
	GuideTypeLoyalty,
	GuideTypeMarketing,
}

// IsValidGuideType reports whether the guide type is known
func IsValidGuideType(guideType string) bool {
	for _, t := range ValidGuideTypes {
		if guideType == t {
			return true
		}
	}
	return false
}

// GuideConfig is one row per guide type, admin-editable. The viewer falls
// back to DefaultGuideConfigs when no row exists.
type GuideConfig struct {
	GuideType   string    `json:"guide_type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EmbedURL    string    `json:"embed_url"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultGuideConfigs are served when no row has been persisted for a guide
// type yet, so the guide viewer never sees a missing guide.
var DefaultGuideConfigs = map[string]GuideConfig{
	GuideTypeBookings: {
		GuideType:   GuideTypeBookings,
		Title:       "Bookings",
		Description: "Take reservations and manage your floor plan",
		EmbedURL:    "https://guides.venuelaunch.app/bookings",
		IsActive:    true,
	},
	GuideTypeLoyalty: {
		GuideType:   GuideTypeLoyalty,
		Title:       "Loyalty",
		Description: "Reward repeat guests with points and perks",
		EmbedURL:    "https://guides.venuelaunch.app/loyalty",
		IsActive:    true,
	},
	GuideTypeMarketing: {
		GuideType:   GuideTypeMarketing,
		Title:       "Marketing",
		Description: "Campaigns, automations and guest segments",
		EmbedURL:    "https://guides.venuelaunch.app/marketing",
		IsActive:    true,
	},
}

// UpdateGuideRequest represents the API request to edit a guide config
type UpdateGuideRequest struct {
	GuideType   string  `json:"guide_type"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	EmbedURL    *string `json:"embed_url,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateGuideRequest) Validate() error {
	if r.GuideType == "" {
		return fmt.Errorf("guide_type is required")
	}
	if !IsValidGuideType(r.GuideType) {
		return fmt.Errorf("guide_type must be one of: %v", ValidGuideTypes)
	}
	if r.EmbedURL != nil {
		if _, err := url.ParseRequestURI(*r.EmbedURL); err != nil {
			return fmt.Errorf("embed_url is not a valid URL")
		}
	}
	return nil
}

// GuideRepository defines persistence methods
type GuideRepository interface {
	GetByType(ctx context.Context, guideType string) (*GuideConfig, error)
	List(ctx context.Context) ([]*GuideConfig, error)
	Upsert(ctx context.Context, guide *GuideConfig) error
}

// GuideService defines business logic
type GuideService interface {
	GetGuide(ctx context.Context, guideType string) (*GuideConfig, error)
	ListGuides(ctx context.Context) ([]*GuideConfig, error)
	UpdateGuide(ctx context.Context, req *UpdateGuideRequest) (*GuideConfig, error)
}
