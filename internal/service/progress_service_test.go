package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

func TestProgressService_TrackProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a new step complete", func(t *testing.T) {
		repo := new(MockProgressRepository)
		svc := NewProgressService(repo, logger.NewTestLogger(t))

		repo.On("Get", ctx, "user-1", domain.StepAccountSetup).
			Return(nil, &domain.ErrNotFound{Entity: "onboarding progress", ID: domain.StepAccountSetup})
		repo.On("Upsert", ctx, mock.MatchedBy(func(p *domain.OnboardingProgress) bool {
			return p.UserID == "user-1" && p.StepID == domain.StepAccountSetup && p.Completed && p.CompletedAt != nil
		})).Return(nil)

		progress, err := svc.TrackProgress(ctx, &domain.TrackProgressRequest{
			UserID: "user-1",
			StepID: domain.StepAccountSetup,
		})
		require.NoError(t, err)
		assert.True(t, progress.Completed)
		repo.AssertExpectations(t)
	})

	t.Run("already completed step issues no write", func(t *testing.T) {
		repo := new(MockProgressRepository)
		svc := NewProgressService(repo, logger.NewTestLogger(t))

		completedAt := time.Now().UTC()
		repo.On("Get", ctx, "user-1", domain.StepGoLive).Return(&domain.OnboardingProgress{
			UserID:      "user-1",
			StepID:      domain.StepGoLive,
			Completed:   true,
			CompletedAt: &completedAt,
		}, nil)

		progress, err := svc.TrackProgress(ctx, &domain.TrackProgressRequest{
			UserID: "user-1",
			StepID: domain.StepGoLive,
		})
		require.NoError(t, err)
		assert.Equal(t, &completedAt, progress.CompletedAt)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("rejects step outside the catalogue", func(t *testing.T) {
		repo := new(MockProgressRepository)
		svc := NewProgressService(repo, logger.NewTestLogger(t))

		_, err := svc.TrackProgress(ctx, &domain.TrackProgressRequest{
			UserID: "user-1",
			StepID: "made_up_step",
		})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProgressService_GetProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("absent rows render as incomplete", func(t *testing.T) {
		repo := new(MockProgressRepository)
		svc := NewProgressService(repo, logger.NewTestLogger(t))

		completedAt := time.Now().UTC()
		repo.On("ListByUser", ctx, "user-1").Return([]*domain.OnboardingProgress{
			{UserID: "user-1", StepID: domain.StepAccountSetup, Completed: true, CompletedAt: &completedAt},
			{UserID: "user-1", StepID: domain.StepWifiConfigured, Completed: true, CompletedAt: &completedAt},
		}, nil)

		summary, err := svc.GetProgress(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, len(domain.OnboardingSteps), summary.TotalCount)
		assert.Equal(t, 2, summary.CompletedCount)
		// 2 of 6 rounds to 33
		assert.Equal(t, 33, summary.CompletionPercent)
		assert.Len(t, summary.Steps, len(domain.OnboardingSteps))
		assert.True(t, summary.Steps[0].Completed)
		assert.False(t, summary.Steps[1].Completed)
	})

	t.Run("no rows means zero percent", func(t *testing.T) {
		repo := new(MockProgressRepository)
		svc := NewProgressService(repo, logger.NewTestLogger(t))

		repo.On("ListByUser", ctx, "user-2").Return([]*domain.OnboardingProgress{}, nil)

		summary, err := svc.GetProgress(ctx, "user-2")
		require.NoError(t, err)
		assert.Equal(t, 0, summary.CompletedCount)
		assert.Equal(t, 0, summary.CompletionPercent)
	})

	t.Run("empty user id rejected", func(t *testing.T) {
		repo := new(MockProgressRepository)
		svc := NewProgressService(repo, logger.NewTestLogger(t))

		_, err := svc.GetProgress(ctx, "")
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
	})
}
