package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// LockDuration is how long an edit lock is held before it silently expires.
// There is no heartbeat: a crashed editor's lock becomes eligible for
// takeover once expires_at passes.
const LockDuration = 15 * time.Minute

var itemKeyPattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)

// ContentType is a named schema definition describing the shape of a class
// of content items. Schema is a JSON Schema document validated against
// incoming payloads at write time.
type ContentType struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate validates the content type
func (t *ContentType) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(t.Name) > 100 {
		return fmt.Errorf("name must be 100 characters or less")
	}
	if len(t.Schema) == 0 {
		return fmt.Errorf("schema is required")
	}
	if !json.Valid(t.Schema) {
		return fmt.Errorf("schema is not valid JSON")
	}
	return nil
}

// ContentItem is one addressable, versioned unit of CMS-managed page
// content. The live content column is overwritten in place; history lives in
// content_versions.
type ContentItem struct {
	ID            string                 `json:"id"`
	ContentTypeID string                 `json:"content_type_id"`
	ItemKey       string                 `json:"item_key"`
	Content       map[string]interface{} `json:"content"`
	IsPublished   bool                   `json:"is_published"`
	PublishedAt   *time.Time             `json:"published_at,omitempty"`
	CreatedBy     string                 `json:"created_by"`
	UpdatedBy     string                 `json:"updated_by"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// ContentVersion is an append-only snapshot of a content item at save time.
// Version numbers increase monotonically per item, starting at 1.
type ContentVersion struct {
	ID            string                 `json:"id"`
	ContentItemID string                 `json:"content_item_id"`
	VersionNumber int                    `json:"version_number"`
	Content       map[string]interface{} `json:"content"`
	CreatedBy     string                 `json:"created_by"`
	CreatedAt     time.Time              `json:"created_at"`
}

// ContentLock grants one admin exclusive edit rights to a content item until
// expires_at. At most one unexpired lock exists per item.
type ContentLock struct {
	ID            string    `json:"id"`
	ContentItemID string    `json:"content_item_id"`
	AdminID       string    `json:"admin_id"`
	LockToken     string    `json:"lock_token"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsExpired reports whether the lock has lapsed
func (l *ContentLock) IsExpired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// CreateContentTypeRequest represents the API request to define a content type
type CreateContentTypeRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema"`
}

func (r *CreateContentTypeRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(r.Name) > 100 {
		return fmt.Errorf("name must be 100 characters or less")
	}
	if len(r.Schema) == 0 {
		return fmt.Errorf("schema is required")
	}
	if !json.Valid(r.Schema) {
		return fmt.Errorf("schema is not valid JSON")
	}
	return nil
}

// CreateContentItemRequest represents the API request to create an item
type CreateContentItemRequest struct {
	ContentTypeID string                 `json:"content_type_id"`
	ItemKey       string                 `json:"item_key"`
	Content       map[string]interface{} `json:"content"`
}

func (r *CreateContentItemRequest) Validate() error {
	if r.ContentTypeID == "" {
		return fmt.Errorf("content_type_id is required")
	}
	if r.ItemKey == "" {
		return fmt.Errorf("item_key is required")
	}
	if len(r.ItemKey) > 100 {
		return fmt.Errorf("item_key must be 100 characters or less")
	}
	if !itemKeyPattern.MatchString(r.ItemKey) {
		return fmt.Errorf("item_key must contain only lowercase letters, numbers, underscores, dots, and hyphens")
	}
	if r.Content == nil {
		return fmt.Errorf("content is required")
	}
	return nil
}

// UpdateContentItemRequest represents the API request to save new content.
// LockToken must identify the caller's live lock when one exists for the
// item.
type UpdateContentItemRequest struct {
	ID        string                 `json:"id"`
	Content   map[string]interface{} `json:"content"`
	LockToken string                 `json:"lock_token,omitempty"`
}

func (r *UpdateContentItemRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.Content == nil {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ListContentItemsRequest represents query parameters for listing items
type ListContentItemsRequest struct {
	ContentTypeID *string
	PublishedOnly bool
	Limit         int
	Offset        int
}

func (r *ListContentItemsRequest) Validate() error {
	if r.Limit <= 0 {
		r.Limit = 50
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return nil
}

// ContentTypeRepository defines persistence methods for content types
type ContentTypeRepository interface {
	Create(ctx context.Context, contentType *ContentType) error
	GetByID(ctx context.Context, id string) (*ContentType, error)
	List(ctx context.Context) ([]*ContentType, error)
}

// ContentRepository defines persistence methods for items, versions and
// locks. UpdateWithVersion overwrites the live content and appends the next
// version row in one transaction; AcquireLock performs its expiry sweep,
// conflict check and insert in one transaction as well, so two admins racing
// for the same item cannot both win.
type ContentRepository interface {
	CreateWithVersion(ctx context.Context, item *ContentItem, createdBy string) error
	GetByID(ctx context.Context, id string) (*ContentItem, error)
	GetByKey(ctx context.Context, itemKey string) (*ContentItem, error)
	List(ctx context.Context, req *ListContentItemsRequest) ([]*ContentItem, error)
	UpdateWithVersion(ctx context.Context, item *ContentItem, updatedBy string) (*ContentVersion, error)
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool, at time.Time, updatedBy string) error

	ListVersions(ctx context.Context, contentItemID string) ([]*ContentVersion, error)
	GetVersion(ctx context.Context, contentItemID string, versionNumber int) (*ContentVersion, error)

	AcquireLock(ctx context.Context, contentItemID, adminID string, now time.Time) (*ContentLock, error)
	GetLock(ctx context.Context, contentItemID string, now time.Time) (*ContentLock, error)
	ReleaseLock(ctx context.Context, contentItemID, lockToken, adminID string) error
}

// ContentService defines business logic over typed, versioned content
type ContentService interface {
	CreateContentType(ctx context.Context, token string, req *CreateContentTypeRequest) (*ContentType, error)
	ListContentTypes(ctx context.Context, token string) ([]*ContentType, error)
	GetContentType(ctx context.Context, token string, id string) (*ContentType, error)

	CreateContentItem(ctx context.Context, token string, req *CreateContentItemRequest) (*ContentItem, error)
	GetContentItem(ctx context.Context, token string, id string) (*ContentItem, error)
	ListContentItems(ctx context.Context, token string, req *ListContentItemsRequest) ([]*ContentItem, error)
	UpdateContentItem(ctx context.Context, token string, req *UpdateContentItemRequest) (*ContentItem, error)
	DeleteContentItem(ctx context.Context, token string, id string) error
	PublishContentItem(ctx context.Context, token string, id string, publish bool) (*ContentItem, error)

	ListVersions(ctx context.Context, token string, contentItemID string) ([]*ContentVersion, error)
	GetVersion(ctx context.Context, token string, contentItemID string, versionNumber int) (*ContentVersion, error)

	AcquireLock(ctx context.Context, token string, contentItemID string) (*ContentLock, error)
	ReleaseLock(ctx context.Context, token string, contentItemID, lockToken string) error

	// GetPublishedContent serves the portal frontend without a token.
	// Unpublished items are indistinguishable from absent ones.
	GetPublishedContent(ctx context.Context, itemKey string) (*ContentItem, error)
}
