package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

func TestVenueService_CreateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("valid venue created", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		repo.On("CreateVenue", ctx, mock.MatchedBy(func(v *domain.Venue) bool {
			return v.Name == "The Golden Fork" && v.UserID == "user-1"
		})).Return(nil)

		venue, err := svc.CreateVenue(ctx, &domain.CreateVenueRequest{
			UserID:  "user-1",
			Name:    "The Golden Fork",
			Address: "12 Harbour St",
		})
		require.NoError(t, err)
		assert.Equal(t, "The Golden Fork", venue.Name)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		_, err := svc.CreateVenue(ctx, &domain.CreateVenueRequest{UserID: "user-1"})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		repo.AssertNotCalled(t, "CreateVenue", mock.Anything, mock.Anything)
	})
}

func TestVenueService_AddTeamMember(t *testing.T) {
	ctx := context.Background()

	t.Run("member attached to an existing venue", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		repo.On("GetVenueByID", ctx, "venue-1").Return(&domain.Venue{ID: "venue-1"}, nil)
		repo.On("CreateTeamMember", ctx, mock.Anything).Return(nil)

		member, err := svc.AddTeamMember(ctx, &domain.TeamMember{
			VenueID: "venue-1",
			Name:    "Sam",
			Email:   "sam@thegoldenfork.com",
			JobRole: "manager",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sam", member.Name)
	})

	t.Run("unknown venue rejected", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		repo.On("GetVenueByID", ctx, "missing").
			Return(nil, &domain.ErrNotFound{Entity: "venue", ID: "missing"})

		_, err := svc.AddTeamMember(ctx, &domain.TeamMember{VenueID: "missing", Name: "Sam"})
		require.Error(t, err)
		assert.IsType(t, &domain.ErrNotFound{}, err)
		repo.AssertNotCalled(t, "CreateTeamMember", mock.Anything, mock.Anything)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		_, err := svc.AddTeamMember(ctx, &domain.TeamMember{
			VenueID: "venue-1",
			Name:    "Sam",
			Email:   "not-an-email",
		})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
	})
}

func TestVenueService_CreateTask(t *testing.T) {
	ctx := context.Background()

	repo := new(MockVenueRepository)
	svc := NewVenueService(repo, logger.NewTestLogger(t))

	repo.On("GetVenueByID", ctx, "venue-1").Return(&domain.Venue{ID: "venue-1"}, nil)
	repo.On("CreateTask", ctx, mock.MatchedBy(func(task *domain.OnboardingTask) bool {
		return task.Status == domain.TaskStatusNotStarted
	})).Return(nil)

	task, err := svc.CreateTask(ctx, &domain.CreateTaskRequest{
		VenueID: "venue-1",
		Title:   "Upload the menu",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusNotStarted, task.Status)
	repo.AssertExpectations(t)
}

func TestVenueService_UpdateTask(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.OnboardingTask {
		return &domain.OnboardingTask{
			ID:      "task-1",
			VenueID: "venue-1",
			Title:   "Upload the menu",
			Status:  domain.TaskStatusInProgress,
		}
	}

	t.Run("forward transition saved", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		repo.On("GetTaskByID", ctx, "task-1").Return(existing(), nil)
		repo.On("UpdateTask", ctx, mock.MatchedBy(func(task *domain.OnboardingTask) bool {
			return task.Status == domain.TaskStatusCompleted
		})).Return(nil)

		status := domain.TaskStatusCompleted
		task, err := svc.UpdateTask(ctx, &domain.UpdateTaskRequest{ID: "task-1", Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, task.Status)
	})

	t.Run("backward transition rejected", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		repo.On("GetTaskByID", ctx, "task-1").Return(existing(), nil)

		status := domain.TaskStatusNotStarted
		_, err := svc.UpdateTask(ctx, &domain.UpdateTaskRequest{ID: "task-1", Status: &status})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		assert.Contains(t, err.Error(), "cannot move task from in_progress back to not_started")
		repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
	})

	t.Run("same status stays idempotent", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		repo.On("GetTaskByID", ctx, "task-1").Return(existing(), nil)
		repo.On("UpdateTask", ctx, mock.Anything).Return(nil)

		status := domain.TaskStatusInProgress
		task, err := svc.UpdateTask(ctx, &domain.UpdateTaskRequest{ID: "task-1", Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	})

	t.Run("reassignment without status change", func(t *testing.T) {
		repo := new(MockVenueRepository)
		svc := NewVenueService(repo, logger.NewTestLogger(t))

		repo.On("GetTaskByID", ctx, "task-1").Return(existing(), nil)
		repo.On("UpdateTask", ctx, mock.MatchedBy(func(task *domain.OnboardingTask) bool {
			return task.TeamMemberID != nil && *task.TeamMemberID == "member-2"
		})).Return(nil)

		memberID := "member-2"
		task, err := svc.UpdateTask(ctx, &domain.UpdateTaskRequest{ID: "task-1", TeamMemberID: &memberID})
		require.NoError(t, err)
		require.NotNil(t, task.TeamMemberID)
		assert.Equal(t, "member-2", *task.TeamMemberID)
	})
}
