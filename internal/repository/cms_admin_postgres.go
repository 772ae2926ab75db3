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

type cmsAdminRepository struct {
	db *sql.DB
}

// NewCmsAdminRepository creates a new PostgreSQL CMS admin repository
func NewCmsAdminRepository(db *sql.DB) domain.CmsAdminRepository {
	return &cmsAdminRepository{db: db}
}

func (r *cmsAdminRepository) Create(ctx context.Context, admin *domain.CmsAdmin) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO cms_admins (id, email, password_hash, name, role, is_active, last_login, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Name,
		admin.Role,
		admin.IsActive,
		admin.LastLogin,
		admin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create cms admin: %w", err)
	}

	return nil
}

func (r *cmsAdminRepository) GetByID(ctx context.Context, id string) (*domain.CmsAdmin, error) {
	query := `
		SELECT id, email, password_hash, name, role, is_active, last_login, created_at
		FROM cms_admins
		WHERE id = $1
	`
	return r.scanAdmin(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *cmsAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.CmsAdmin, error) {
	query := `
		SELECT id, email, password_hash, name, role, is_active, last_login, created_at
		FROM cms_admins
		WHERE email = $1
	`
	return r.scanAdmin(r.db.QueryRowContext(ctx, query, email), email)
}

func (r *cmsAdminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE cms_admins SET last_login = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

func (r *cmsAdminRepository) scanAdmin(row *sql.Row, id string) (*domain.CmsAdmin, error) {
	var admin domain.CmsAdmin
	var name sql.NullString
	var lastLogin sql.NullTime

	err := row.Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&name,
		&admin.Role,
		&admin.IsActive,
		&lastLogin,
		&admin.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "cms admin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cms admin: %w", err)
	}

	admin.Name = name.String
	if lastLogin.Valid {
		admin.LastLogin = &lastLogin.Time
	}

	return &admin, nil
}
