package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

type guideRepository struct {
	db *sql.DB
}

// NewGuideRepository creates a new PostgreSQL guide config repository
func NewGuideRepository(db *sql.DB) domain.GuideRepository {
	return &guideRepository{db: db}
}

func (r *guideRepository) GetByType(ctx context.Context, guideType string) (*domain.GuideConfig, error) {
	query := `
		SELECT guide_type, title, description, embed_url, is_active, updated_at
		FROM guide_configs
		WHERE guide_type = $1
	`

	var guide domain.GuideConfig
	var description sql.NullString

	err := r.db.QueryRowContext(ctx, query, guideType).Scan(
		&guide.GuideType,
		&guide.Title,
		&description,
		&guide.EmbedURL,
		&guide.IsActive,
		&guide.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "guide config", ID: guideType}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guide config: %w", err)
	}
	guide.Description = description.String

	return &guide, nil
}

func (r *guideRepository) List(ctx context.Context) ([]*domain.GuideConfig, error) {
	query := `
		SELECT guide_type, title, description, embed_url, is_active, updated_at
		FROM guide_configs
		ORDER BY guide_type
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query guide configs: %w", err)
	}
	defer rows.Close()

	var guides []*domain.GuideConfig
	for rows.Next() {
		var guide domain.GuideConfig
		var description sql.NullString

		err := rows.Scan(
			&guide.GuideType,
			&guide.Title,
			&description,
			&guide.EmbedURL,
			&guide.IsActive,
			&guide.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guide config: %w", err)
		}
		guide.Description = description.String

		guides = append(guides, &guide)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guide configs: %w", err)
	}

	return guides, nil
}

func (r *guideRepository) Upsert(ctx context.Context, guide *domain.GuideConfig) error {
	guide.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO guide_configs (guide_type, title, description, embed_url, is_active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (guide_type) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			embed_url = EXCLUDED.embed_url,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		guide.GuideType,
		guide.Title,
		guide.Description,
		guide.EmbedURL,
		guide.IsActive,
		guide.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert guide config: %w", err)
	}

	return nil
}
