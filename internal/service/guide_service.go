package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

type GuideService struct {
	repo   domain.GuideRepository
	logger logger.Logger
}

func NewGuideService(repo domain.GuideRepository, logger logger.Logger) *GuideService {
	return &GuideService{
		repo:   repo,
		logger: logger,
	}
}

// GetGuide returns the stored config for a guide type, falling back to the
// hardcoded default when no row has been persisted yet. The viewer never
// sees a missing guide for a known type.
func (s *GuideService) GetGuide(ctx context.Context, guideType string) (*domain.GuideConfig, error) {
	if !domain.IsValidGuideType(guideType) {
		return nil, domain.NewValidationError(fmt.Sprintf("guide_type must be one of: %v", domain.ValidGuideTypes))
	}

	guide, err := s.repo.GetByType(ctx, guideType)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			fallback := domain.DefaultGuideConfigs[guideType]
			return &fallback, nil
		}
		return nil, fmt.Errorf("failed to get guide: %w", err)
	}

	return guide, nil
}

// ListGuides returns a config for every known guide type, stored rows
// taking precedence over defaults
func (s *GuideService) ListGuides(ctx context.Context) ([]*domain.GuideConfig, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}

	byType := make(map[string]*domain.GuideConfig, len(stored))
	for _, guide := range stored {
		byType[guide.GuideType] = guide
	}

	guides := make([]*domain.GuideConfig, 0, len(domain.ValidGuideTypes))
	for _, guideType := range domain.ValidGuideTypes {
		if guide, ok := byType[guideType]; ok {
			guides = append(guides, guide)
			continue
		}
		fallback := domain.DefaultGuideConfigs[guideType]
		guides = append(guides, &fallback)
	}

	return guides, nil
}

func (s *GuideService) UpdateGuide(ctx context.Context, req *domain.UpdateGuideRequest) (*domain.GuideConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	// Start from the current effective config so partial updates keep the
	// remaining fields
	guide, err := s.GetGuide(ctx, req.GuideType)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		guide.Title = *req.Title
	}
	if req.Description != nil {
		guide.Description = *req.Description
	}
	if req.EmbedURL != nil {
		guide.EmbedURL = *req.EmbedURL
	}
	if req.IsActive != nil {
		guide.IsActive = *req.IsActive
	}

	if err := s.repo.Upsert(ctx, guide); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"error":      err.Error(),
			"guide_type": req.GuideType,
		}).Error("Failed to update guide")
		return nil, fmt.Errorf("failed to update guide: %w", err)
	}

	return guide, nil
}
