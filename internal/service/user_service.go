package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

type UserService struct {
	repo   domain.UserRepository
	logger logger.Logger
}

func NewUserService(repo domain.UserRepository, logger logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// GetOrCreateUser reconciles a sign-in with the users table: the row is
// created on first sign-in and reused afterwards.
func (s *UserService) GetOrCreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	existing, err := s.repo.GetByExternalAuthID(ctx, req.ExternalAuthID)
	if err == nil {
		return existing, nil
	}
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := &domain.User{
		Email:          req.Email,
		ExternalAuthID: req.ExternalAuthID,
		Name:           req.Name,
		Role:           domain.UserRoleClient,
		IsActive:       true,
	}
	if err := user.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		}).Error("Failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.WithField("user_id", user.ID).Info("User created on first sign-in")

	return user, nil
}

func (s *UserService) GetUserByExternalAuthID(ctx context.Context, externalAuthID string) (*domain.User, error) {
	if externalAuthID == "" {
		return nil, domain.NewValidationError("external_auth_id is required")
	}
	return s.repo.GetByExternalAuthID(ctx, externalAuthID)
}

func (s *UserService) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	user, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, req *domain.ListUsersRequest) ([]*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	return s.repo.List(ctx, req)
}
