package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

type ProgressService struct {
	repo   domain.ProgressRepository
	logger logger.Logger
}

func NewProgressService(repo domain.ProgressRepository, logger logger.Logger) *ProgressService {
	return &ProgressService{
		repo:   repo,
		logger: logger,
	}
}

// TrackProgress marks a catalogue step complete. It is idempotent: a step
// already marked complete issues no write, so each (user, step) sees at
// most one incomplete -> complete transition. There is no supported
// complete -> incomplete transition.
func (s *ProgressService) TrackProgress(ctx context.Context, req *domain.TrackProgressRequest) (*domain.OnboardingProgress, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	existing, err := s.repo.Get(ctx, req.UserID, req.StepID)
	if err == nil && existing.Completed {
		return existing, nil
	}
	var notFound *domain.ErrNotFound
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to look up progress: %w", err)
	}

	now := time.Now().UTC()
	progress := &domain.OnboardingProgress{
		UserID:      req.UserID,
		StepID:      req.StepID,
		Completed:   true,
		CompletedAt: &now,
		Metadata:    req.Metadata,
	}
	if progress.Metadata == nil {
		progress.Metadata = make(map[string]interface{})
	}
	if existing != nil {
		progress.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Upsert(ctx, progress); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"error":   err.Error(),
			"user_id": req.UserID,
			"step_id": req.StepID,
		}).Error("Failed to track progress")
		return nil, fmt.Errorf("failed to track progress: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": req.UserID,
		"step_id": req.StepID,
	}).Info("Onboarding step completed")

	return progress, nil
}

// GetProgress aggregates persisted rows against the fixed step catalogue.
// An absent row renders as incomplete; a user with no rows sees 0%.
func (s *ProgressService) GetProgress(ctx context.Context, userID string) (*domain.ProgressSummary, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id is required")
	}

	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	byStep := make(map[string]*domain.OnboardingProgress, len(rows))
	for _, row := range rows {
		byStep[row.StepID] = row
	}

	summary := &domain.ProgressSummary{
		UserID:     userID,
		Steps:      make([]domain.StepStatus, 0, len(domain.OnboardingSteps)),
		TotalCount: len(domain.OnboardingSteps),
	}

	for _, step := range domain.OnboardingSteps {
		status := domain.StepStatus{Step: step}
		if row, ok := byStep[step.ID]; ok && row.Completed {
			status.Completed = true
			status.CompletedAt = row.CompletedAt
			summary.CompletedCount++
		}
		summary.Steps = append(summary.Steps, status)
	}

	summary.CompletionPercent = domain.CompletionPercent(summary.CompletedCount, summary.TotalCount)

	return summary, nil
}
