package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new PostgreSQL onboarding progress repository
func NewProgressRepository(db *sql.DB) domain.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, userID, stepID string) (*domain.OnboardingProgress, error) {
	query := `
		SELECT user_id, step_id, completed, completed_at, metadata, created_at, updated_at
		FROM onboarding_progress
		WHERE user_id = $1 AND step_id = $2
	`

	var progress domain.OnboardingProgress
	var completedAt sql.NullTime
	var metadataJSON []byte

	err := r.db.QueryRowContext(ctx, query, userID, stepID).Scan(
		&progress.UserID,
		&progress.StepID,
		&progress.Completed,
		&completedAt,
		&metadataJSON,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "onboarding progress", ID: stepID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding progress: %w", err)
	}

	if completedAt.Valid {
		progress.CompletedAt = &completedAt.Time
	}
	if err := json.Unmarshal(metadataJSON, &progress.Metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	return &progress, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID string) ([]*domain.OnboardingProgress, error) {
	query := `
		SELECT user_id, step_id, completed, completed_at, metadata, created_at, updated_at
		FROM onboarding_progress
		WHERE user_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query onboarding progress: %w", err)
	}
	defer rows.Close()

	var result []*domain.OnboardingProgress
	for rows.Next() {
		var progress domain.OnboardingProgress
		var completedAt sql.NullTime
		var metadataJSON []byte

		err := rows.Scan(
			&progress.UserID,
			&progress.StepID,
			&progress.Completed,
			&completedAt,
			&metadataJSON,
			&progress.CreatedAt,
			&progress.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan onboarding progress: %w", err)
		}

		if completedAt.Valid {
			progress.CompletedAt = &completedAt.Time
		}
		if err := json.Unmarshal(metadataJSON, &progress.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}

		result = append(result, &progress)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating onboarding progress: %w", err)
	}

	return result, nil
}

func (r *progressRepository) Upsert(ctx context.Context, progress *domain.OnboardingProgress) error {
	now := time.Now().UTC()
	if progress.CreatedAt.IsZero() {
		progress.CreatedAt = now
	}
	progress.UpdatedAt = now

	metadataJSON, err := json.Marshal(progress.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	// One row per (user, step): created on first interaction, updated in
	// place afterwards.
	query := `
		INSERT INTO onboarding_progress (user_id, step_id, completed, completed_at, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, step_id) DO UPDATE SET
			completed = EXCLUDED.completed,
			completed_at = EXCLUDED.completed_at,
			metadata = EXCLUDED.metadata,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.ExecContext(ctx, query,
		progress.UserID,
		progress.StepID,
		progress.Completed,
		progress.CompletedAt,
		metadataJSON,
		progress.CreatedAt,
		progress.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert onboarding progress: %w", err)
	}

	return nil
}
