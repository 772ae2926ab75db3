package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

type contentTypeRepository struct {
	db *sql.DB
}

// NewContentTypeRepository creates a new PostgreSQL content type repository
func NewContentTypeRepository(db *sql.DB) domain.ContentTypeRepository {
	return &contentTypeRepository{db: db}
}

func (r *contentTypeRepository) Create(ctx context.Context, contentType *domain.ContentType) error {
	if contentType.ID == "" {
		contentType.ID = uuid.New().String()
	}
	contentType.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO content_types (id, name, description, schema, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		contentType.ID,
		contentType.Name,
		contentType.Description,
		[]byte(contentType.Schema),
		contentType.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create content type: %w", err)
	}

	return nil
}

func (r *contentTypeRepository) GetByID(ctx context.Context, id string) (*domain.ContentType, error) {
	query := `
		SELECT id, name, description, schema, created_at
		FROM content_types
		WHERE id = $1
	`

	var contentType domain.ContentType
	var description sql.NullString
	var schemaJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&contentType.ID,
		&contentType.Name,
		&description,
		&schemaJSON,
		&contentType.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "content type", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}

	contentType.Description = description.String
	contentType.Schema = schemaJSON

	return &contentType, nil
}

func (r *contentTypeRepository) List(ctx context.Context) ([]*domain.ContentType, error) {
	query := `
		SELECT id, name, description, schema, created_at
		FROM content_types
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query content types: %w", err)
	}
	defer rows.Close()

	var contentTypes []*domain.ContentType
	for rows.Next() {
		var contentType domain.ContentType
		var description sql.NullString
		var schemaJSON []byte

		err := rows.Scan(
			&contentType.ID,
			&contentType.Name,
			&description,
			&schemaJSON,
			&contentType.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content type: %w", err)
		}

		contentType.Description = description.String
		contentType.Schema = schemaJSON

		contentTypes = append(contentTypes, &contentType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content types: %w", err)
	}

	return contentTypes, nil
}
