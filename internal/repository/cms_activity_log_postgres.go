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

type cmsActivityLogRepository struct {
	db *sql.DB
}

// NewCmsActivityLogRepository creates a new PostgreSQL audit log repository.
// The table is append-only.
func NewCmsActivityLogRepository(db *sql.DB) domain.CmsActivityLogRepository {
	return &cmsActivityLogRepository{db: db}
}

func (r *cmsActivityLogRepository) Create(ctx context.Context, log *domain.CmsActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	detailsJSON, err := json.Marshal(log.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal details: %w", err)
	}

	query := `
		INSERT INTO cms_activity_logs (id, admin_id, action, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query,
		log.ID,
		log.AdminID,
		log.Action,
		log.ResourceType,
		log.ResourceID,
		detailsJSON,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create cms activity log: %w", err)
	}

	return nil
}

func (r *cmsActivityLogRepository) List(ctx context.Context, req *domain.ListCmsActivityLogsRequest) ([]*domain.CmsActivityLog, error) {
	builder := sq.Select("id", "admin_id", "action", "resource_type", "resource_id", "details", "created_at").
		From("cms_activity_logs").
		OrderBy("created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset)).
		PlaceholderFormat(sq.Dollar)

	if req.AdminID != nil {
		builder = builder.Where(sq.Eq{"admin_id": *req.AdminID})
	}
	if req.ResourceType != nil {
		builder = builder.Where(sq.Eq{"resource_type": *req.ResourceType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cms activity logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.CmsActivityLog
	for rows.Next() {
		var log domain.CmsActivityLog
		var resourceID sql.NullString
		var detailsJSON []byte

		err := rows.Scan(
			&log.ID,
			&log.AdminID,
			&log.Action,
			&log.ResourceType,
			&resourceID,
			&detailsJSON,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cms activity log: %w", err)
		}

		log.ResourceID = resourceID.String
		if err := json.Unmarshal(detailsJSON, &log.Details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal details: %w", err)
		}

		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cms activity logs: %w", err)
	}

	return logs, nil
}
