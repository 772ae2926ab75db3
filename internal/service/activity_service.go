package service

import (
	"context"
	"fmt"
	"time"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

type ActivityService struct {
	activityRepo domain.ActivityRepository
	sessionRepo  domain.SessionRepository
	logger       logger.Logger
}

func NewActivityService(
	activityRepo domain.ActivityRepository,
	sessionRepo domain.SessionRepository,
	logger logger.Logger,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		logger:       logger,
	}
}

func (s *ActivityService) StartSession(ctx context.Context, req *domain.StartSessionRequest) (*domain.UserSession, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	now := time.Now().UTC()
	session := &domain.UserSession{
		SessionID:    req.SessionID,
		UserID:       req.UserID,
		LoginTime:    now,
		LastActivity: now,
		IsActive:     true,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"session_id": req.SessionID,
		"user_id":    req.UserID,
	}).Info("Session started")

	return session, nil
}

// EndSession marks the session row inactive. Ending an already-ended or
// unknown session is not an error: the tracker fires this on page unload
// and may race its own retries.
func (s *ActivityService) EndSession(ctx context.Context, req *domain.EndSessionRequest) error {
	if err := req.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}

	if err := s.sessionRepo.End(ctx, req.SessionID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// TrackActivity appends one event row. Metadata is enriched with the server
// receive time; the client's own timestamp stays untouched inside metadata
// so consumers can order events correctly regardless of arrival order.
func (s *ActivityService) TrackActivity(ctx context.Context, req *domain.TrackActivityRequest) (*domain.UserActivity, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	now := time.Now().UTC()
	req.Metadata["received_at"] = now.Format(time.RFC3339Nano)

	activity := &domain.UserActivity{
		UserID:       req.UserID,
		ActivityType: req.ActivityType,
		Page:         req.Page,
		Metadata:     req.Metadata,
		CreatedAt:    now,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to track activity: %w", err)
	}

	// Best-effort: a failed touch must not fail the event write
	if sessionID, ok := req.Metadata["session_id"].(string); ok && sessionID != "" {
		if err := s.sessionRepo.TouchLastActivity(ctx, sessionID, now); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"error":      err.Error(),
				"session_id": sessionID,
			}).Warn("Failed to touch session last activity")
		}
	}

	return activity, nil
}

func (s *ActivityService) ListActivities(ctx context.Context, req *domain.ListActivitiesRequest) ([]*domain.UserActivity, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	return s.activityRepo.List(ctx, req)
}
