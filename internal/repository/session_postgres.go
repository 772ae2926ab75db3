package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	query := `
		INSERT INTO user_sessions (session_id, user_id, login_time, last_activity, logout_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		session.SessionID,
		session.UserID,
		session.LoginTime,
		session.LastActivity,
		session.LogoutTime,
		session.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, sessionID string) (*domain.UserSession, error) {
	query := `
		SELECT session_id, user_id, login_time, last_activity, logout_time, is_active
		FROM user_sessions
		WHERE session_id = $1
	`

	var session domain.UserSession
	var logoutTime sql.NullTime

	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&session.SessionID,
		&session.UserID,
		&session.LoginTime,
		&session.LastActivity,
		&logoutTime,
		&session.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "session", ID: sessionID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if logoutTime.Valid {
		session.LogoutTime = &logoutTime.Time
	}

	return &session, nil
}

func (r *sessionRepository) TouchLastActivity(ctx context.Context, sessionID string, at time.Time) error {
	query := `UPDATE user_sessions SET last_activity = $1 WHERE session_id = $2`

	_, err := r.db.ExecContext(ctx, query, at, sessionID)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

// End marks the session row inactive in place. Already-ended sessions are
// left untouched so repeated logout calls stay idempotent.
func (r *sessionRepository) End(ctx context.Context, sessionID string, at time.Time) error {
	query := `
		UPDATE user_sessions
		SET logout_time = $1, last_activity = $1, is_active = FALSE
		WHERE session_id = $2 AND is_active = TRUE
	`

	_, err := r.db.ExecContext(ctx, query, at, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}
