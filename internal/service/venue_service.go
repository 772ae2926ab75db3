package service

import (
	"context"
	"fmt"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

type VenueService struct {
	repo   domain.VenueRepository
	logger logger.Logger
}

func NewVenueService(repo domain.VenueRepository, logger logger.Logger) *VenueService {
	return &VenueService{
		repo:   repo,
		logger: logger,
	}
}

func (s *VenueService) CreateVenue(ctx context.Context, req *domain.CreateVenueRequest) (*domain.Venue, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	venue := &domain.Venue{
		UserID:  req.UserID,
		Name:    req.Name,
		Address: req.Address,
	}
	if err := venue.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"venue_id": venue.ID,
		"user_id":  venue.UserID,
	}).Info("Venue created")

	return venue, nil
}

func (s *VenueService) ListVenues(ctx context.Context, userID string) ([]*domain.Venue, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id is required")
	}
	return s.repo.ListVenuesByUser(ctx, userID)
}

func (s *VenueService) AddTeamMember(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error) {
	if err := member.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	// Venue must exist before members are attached
	if _, err := s.repo.GetVenueByID(ctx, member.VenueID); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTeamMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	return member, nil
}

func (s *VenueService) ListTeamMembers(ctx context.Context, venueID string) ([]*domain.TeamMember, error) {
	if venueID == "" {
		return nil, domain.NewValidationError("venue_id is required")
	}
	return s.repo.ListTeamMembers(ctx, venueID)
}

func (s *VenueService) CreateTask(ctx context.Context, req *domain.CreateTaskRequest) (*domain.OnboardingTask, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if _, err := s.repo.GetVenueByID(ctx, req.VenueID); err != nil {
		return nil, err
	}

	task := &domain.OnboardingTask{
		VenueID:      req.VenueID,
		TeamMemberID: req.TeamMemberID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       domain.TaskStatusNotStarted,
		DueDate:      req.DueDate,
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *VenueService) ListTasks(ctx context.Context, venueID string) ([]*domain.OnboardingTask, error) {
	if venueID == "" {
		return nil, domain.NewValidationError("venue_id is required")
	}
	return s.repo.ListTasks(ctx, venueID)
}

// UpdateTask applies status and assignment changes. Status only moves
// forward: a completed task cannot return to not_started.
func (s *VenueService) UpdateTask(ctx context.Context, req *domain.UpdateTaskRequest) (*domain.OnboardingTask, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	task, err := s.repo.GetTaskByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !domain.CanTransitionTaskStatus(task.Status, *req.Status) {
			return nil, domain.NewValidationError(
				fmt.Sprintf("cannot move task from %s back to %s", task.Status, *req.Status))
		}
		task.Status = *req.Status
	}
	if req.TeamMemberID != nil {
		task.TeamMemberID = req.TeamMemberID
	}

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}
