package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new PostgreSQL activity repository.
// The user_activities table is append-only: rows are never updated or
// deleted.
func NewActivityRepository(db *sql.DB) domain.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.UserActivity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	metadataJSON, err := json.Marshal(activity.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		INSERT INTO user_activities (id, user_id, activity_type, page, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, query,
		activity.ID,
		activity.UserID,
		activity.ActivityType,
		activity.Page,
		metadataJSON,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

// List returns events ordered by the client timestamp the tracker records in
// metadata, newest first. Events can arrive out of order (retries, page
// unload), so arrival time is only the tiebreaker.
func (r *activityRepository) List(ctx context.Context, req *domain.ListActivitiesRequest) ([]*domain.UserActivity, error) {
	builder := sq.Select("id", "user_id", "activity_type", "page", "metadata", "created_at").
		From("user_activities").
		Where(sq.Eq{"user_id": req.UserID}).
		OrderBy("metadata->>'timestamp' DESC NULLS LAST", "created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset)).
		PlaceholderFormat(sq.Dollar)

	if req.ActivityType != nil {
		builder = builder.Where(sq.Eq{"activity_type": *req.ActivityType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.UserActivity
	for rows.Next() {
		var activity domain.UserActivity
		var page sql.NullString
		var metadataJSON []byte

		err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.ActivityType,
			&page,
			&metadataJSON,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		activity.Page = page.String
		if err := json.Unmarshal(metadataJSON, &activity.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}

		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}
