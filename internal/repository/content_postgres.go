package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

type contentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new PostgreSQL repository for content
// items, versions and locks
func NewContentRepository(db *sql.DB) domain.ContentRepository {
	return &contentRepository{db: db}
}

// withTransaction executes fn inside a transaction. Rollback is a no-op
// after a successful commit.
func (r *contentRepository) withTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CreateWithVersion inserts the item and its version 1 snapshot atomically
func (r *contentRepository) CreateWithVersion(ctx context.Context, item *domain.ContentItem, createdBy string) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	item.CreatedBy = createdBy
	item.UpdatedBy = createdBy

	contentJSON, err := json.Marshal(item.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}

	return r.withTransaction(ctx, func(tx *sql.Tx) error {
		itemQuery := `
			INSERT INTO content_items (id, content_type_id, item_key, content, is_published, published_at, created_by, updated_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err := tx.ExecContext(ctx, itemQuery,
			item.ID,
			item.ContentTypeID,
			item.ItemKey,
			contentJSON,
			item.IsPublished,
			item.PublishedAt,
			item.CreatedBy,
			item.UpdatedBy,
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create content item: %w", err)
		}

		versionQuery := `
			INSERT INTO content_versions (id, content_item_id, version_number, content, created_by, created_at)
			VALUES ($1, $2, 1, $3, $4, $5)
		`
		_, err = tx.ExecContext(ctx, versionQuery,
			uuid.New().String(),
			item.ID,
			contentJSON,
			createdBy,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to create content version: %w", err)
		}

		return nil
	})
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	query := `
		SELECT id, content_type_id, item_key, content, is_published, published_at, created_by, updated_by, created_at, updated_at
		FROM content_items
		WHERE id = $1
	`
	return scanContentItem(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *contentRepository) GetByKey(ctx context.Context, itemKey string) (*domain.ContentItem, error) {
	query := `
		SELECT id, content_type_id, item_key, content, is_published, published_at, created_by, updated_by, created_at, updated_at
		FROM content_items
		WHERE item_key = $1
	`
	return scanContentItem(r.db.QueryRowContext(ctx, query, itemKey), itemKey)
}

func (r *contentRepository) List(ctx context.Context, req *domain.ListContentItemsRequest) ([]*domain.ContentItem, error) {
	builder := sq.Select("id", "content_type_id", "item_key", "content", "is_published", "published_at", "created_by", "updated_by", "created_at", "updated_at").
		From("content_items").
		OrderBy("item_key").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset)).
		PlaceholderFormat(sq.Dollar)

	if req.ContentTypeID != nil {
		builder = builder.Where(sq.Eq{"content_type_id": *req.ContentTypeID})
	}
	if req.PublishedOnly {
		builder = builder.Where(sq.Eq{"is_published": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query content items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ContentItem
	for rows.Next() {
		var item domain.ContentItem
		var contentJSON []byte
		var publishedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.ContentTypeID,
			&item.ItemKey,
			&contentJSON,
			&item.IsPublished,
			&publishedAt,
			&item.CreatedBy,
			&item.UpdatedBy,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content item: %w", err)
		}

		if publishedAt.Valid {
			item.PublishedAt = &publishedAt.Time
		}
		if err := json.Unmarshal(contentJSON, &item.Content); err != nil {
			return nil, fmt.Errorf("failed to unmarshal content: %w", err)
		}

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content items: %w", err)
	}

	return items, nil
}

// UpdateWithVersion overwrites the live content in place and appends the
// next version row, both inside one transaction. The item row is locked
// FOR UPDATE so concurrent saves cannot allocate the same version number.
func (r *contentRepository) UpdateWithVersion(ctx context.Context, item *domain.ContentItem, updatedBy string) (*domain.ContentVersion, error) {
	contentJSON, err := json.Marshal(item.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}

	now := time.Now().UTC()
	version := &domain.ContentVersion{
		ID:            uuid.New().String(),
		ContentItemID: item.ID,
		Content:       item.Content,
		CreatedBy:     updatedBy,
		CreatedAt:     now,
	}

	err = r.withTransaction(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, `SELECT TRUE FROM content_items WHERE id = $1 FOR UPDATE`, item.ID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.ErrNotFound{Entity: "content item", ID: item.ID}
		}
		if err != nil {
			return fmt.Errorf("failed to lock content item: %w", err)
		}

		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(version_number), 0) + 1 FROM content_versions WHERE content_item_id = $1`,
			item.ID,
		).Scan(&version.VersionNumber)
		if err != nil {
			return fmt.Errorf("failed to get next version number: %w", err)
		}

		updateQuery := `
			UPDATE content_items
			SET content = $1, updated_by = $2, updated_at = $3
			WHERE id = $4
		`
		if _, err := tx.ExecContext(ctx, updateQuery, contentJSON, updatedBy, now, item.ID); err != nil {
			return fmt.Errorf("failed to update content item: %w", err)
		}

		versionQuery := `
			INSERT INTO content_versions (id, content_item_id, version_number, content, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err = tx.ExecContext(ctx, versionQuery,
			version.ID,
			version.ContentItemID,
			version.VersionNumber,
			contentJSON,
			version.CreatedBy,
			version.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create content version: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	item.UpdatedBy = updatedBy
	item.UpdatedAt = now

	return version, nil
}

// Delete removes the item, its version history and any lock
func (r *contentRepository) Delete(ctx context.Context, id string) error {
	return r.withTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM content_items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete content item: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return &domain.ErrNotFound{Entity: "content item", ID: id}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM content_versions WHERE content_item_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete content versions: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM content_locks WHERE content_item_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete content lock: %w", err)
		}

		return nil
	})
}

func (r *contentRepository) SetPublished(ctx context.Context, id string, published bool, at time.Time, updatedBy string) error {
	var publishedAt *time.Time
	if published {
		publishedAt = &at
	}

	query := `
		UPDATE content_items
		SET is_published = $1, published_at = $2, updated_by = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query, published, publishedAt, updatedBy, at, id)
	if err != nil {
		return fmt.Errorf("failed to set published: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "content item", ID: id}
	}

	return nil
}

func (r *contentRepository) ListVersions(ctx context.Context, contentItemID string) ([]*domain.ContentVersion, error) {
	query := `
		SELECT id, content_item_id, version_number, content, created_by, created_at
		FROM content_versions
		WHERE content_item_id = $1
		ORDER BY version_number
	`

	rows, err := r.db.QueryContext(ctx, query, contentItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query content versions: %w", err)
	}
	defer rows.Close()

	var versions []*domain.ContentVersion
	for rows.Next() {
		var version domain.ContentVersion
		var contentJSON []byte

		err := rows.Scan(
			&version.ID,
			&version.ContentItemID,
			&version.VersionNumber,
			&contentJSON,
			&version.CreatedBy,
			&version.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content version: %w", err)
		}

		if err := json.Unmarshal(contentJSON, &version.Content); err != nil {
			return nil, fmt.Errorf("failed to unmarshal content: %w", err)
		}

		versions = append(versions, &version)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content versions: %w", err)
	}

	return versions, nil
}

func (r *contentRepository) GetVersion(ctx context.Context, contentItemID string, versionNumber int) (*domain.ContentVersion, error) {
	query := `
		SELECT id, content_item_id, version_number, content, created_by, created_at
		FROM content_versions
		WHERE content_item_id = $1 AND version_number = $2
	`

	var version domain.ContentVersion
	var contentJSON []byte

	err := r.db.QueryRowContext(ctx, query, contentItemID, versionNumber).Scan(
		&version.ID,
		&version.ContentItemID,
		&version.VersionNumber,
		&contentJSON,
		&version.CreatedBy,
		&version.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "content version", ID: fmt.Sprintf("%s@%d", contentItemID, versionNumber)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content version: %w", err)
	}

	if err := json.Unmarshal(contentJSON, &version.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content: %w", err)
	}

	return &version, nil
}

// AcquireLock sweeps any expired lock, then checks and inserts in one
// transaction. The item row is locked FOR UPDATE first so two admins racing
// for the same item serialize here rather than both winning. A live lock
// held by the same admin is extended instead of rejected.
func (r *contentRepository) AcquireLock(ctx context.Context, contentItemID, adminID string, now time.Time) (*domain.ContentLock, error) {
	lock := &domain.ContentLock{
		ID:            uuid.New().String(),
		ContentItemID: contentItemID,
		AdminID:       adminID,
		LockToken:     uuid.New().String(),
		ExpiresAt:     now.Add(domain.LockDuration),
		CreatedAt:     now,
	}

	err := r.withTransaction(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, `SELECT TRUE FROM content_items WHERE id = $1 FOR UPDATE`, contentItemID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.ErrNotFound{Entity: "content item", ID: contentItemID}
		}
		if err != nil {
			return fmt.Errorf("failed to lock content item: %w", err)
		}

		// Expired locks are treated as absent
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM content_locks WHERE content_item_id = $1 AND expires_at <= $2`,
			contentItemID, now,
		); err != nil {
			return fmt.Errorf("failed to sweep expired locks: %w", err)
		}

		var existing domain.ContentLock
		err = tx.QueryRowContext(ctx,
			`SELECT id, content_item_id, admin_id, lock_token, expires_at, created_at
			 FROM content_locks WHERE content_item_id = $1`,
			contentItemID,
		).Scan(
			&existing.ID,
			&existing.ContentItemID,
			&existing.AdminID,
			&existing.LockToken,
			&existing.ExpiresAt,
			&existing.CreatedAt,
		)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check existing lock: %w", err)
		}

		if err == nil {
			if existing.AdminID != adminID {
				return &domain.ErrLockConflict{ContentItemID: contentItemID, ExpiresAt: existing.ExpiresAt}
			}
			// Same admin: extend the held lock
			lock.ID = existing.ID
			lock.LockToken = existing.LockToken
			lock.CreatedAt = existing.CreatedAt
			if _, err := tx.ExecContext(ctx,
				`UPDATE content_locks SET expires_at = $1 WHERE id = $2`,
				lock.ExpiresAt, lock.ID,
			); err != nil {
				return fmt.Errorf("failed to extend lock: %w", err)
			}
			return nil
		}

		insertQuery := `
			INSERT INTO content_locks (id, content_item_id, admin_id, lock_token, expires_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err = tx.ExecContext(ctx, insertQuery,
			lock.ID,
			lock.ContentItemID,
			lock.AdminID,
			lock.LockToken,
			lock.ExpiresAt,
			lock.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert lock: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lock, nil
}

// GetLock returns the live lock for an item, or ErrNotFound when no
// unexpired lock exists
func (r *contentRepository) GetLock(ctx context.Context, contentItemID string, now time.Time) (*domain.ContentLock, error) {
	query := `
		SELECT id, content_item_id, admin_id, lock_token, expires_at, created_at
		FROM content_locks
		WHERE content_item_id = $1 AND expires_at > $2
	`

	var lock domain.ContentLock
	err := r.db.QueryRowContext(ctx, query, contentItemID, now).Scan(
		&lock.ID,
		&lock.ContentItemID,
		&lock.AdminID,
		&lock.LockToken,
		&lock.ExpiresAt,
		&lock.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "content lock", ID: contentItemID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content lock: %w", err)
	}

	return &lock, nil
}

// ReleaseLock deletes the lock identified by token, restricted to its
// holder
func (r *contentRepository) ReleaseLock(ctx context.Context, contentItemID, lockToken, adminID string) error {
	query := `
		DELETE FROM content_locks
		WHERE content_item_id = $1 AND lock_token = $2 AND admin_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, contentItemID, lockToken, adminID)
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "content lock", ID: contentItemID}
	}

	return nil
}

func scanContentItem(row *sql.Row, id string) (*domain.ContentItem, error) {
	var item domain.ContentItem
	var contentJSON []byte
	var publishedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.ContentTypeID,
		&item.ItemKey,
		&contentJSON,
		&item.IsPublished,
		&publishedAt,
		&item.CreatedBy,
		&item.UpdatedBy,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "content item", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content item: %w", err)
	}

	if publishedAt.Valid {
		item.PublishedAt = &publishedAt.Time
	}
	if err := json.Unmarshal(contentJSON, &item.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content: %w", err)
	}

	return &item, nil
}
