package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kaptinlin/jsonschema"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

type ContentService struct {
	contentRepo     domain.ContentRepository
	contentTypeRepo domain.ContentTypeRepository
	activityLogRepo domain.CmsActivityLogRepository
	authService     domain.CMSAuthService
	logger          logger.Logger

	// overridable in tests
	now func() time.Time
}

func NewContentService(
	contentRepo domain.ContentRepository,
	contentTypeRepo domain.ContentTypeRepository,
	activityLogRepo domain.CmsActivityLogRepository,
	authService domain.CMSAuthService,
	logger logger.Logger,
) *ContentService {
	return &ContentService{
		contentRepo:     contentRepo,
		contentTypeRepo: contentTypeRepo,
		activityLogRepo: activityLogRepo,
		authService:     authService,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *ContentService) CreateContentType(ctx context.Context, token string, req *domain.CreateContentTypeRequest) (*domain.ContentType, error) {
	admin, err := s.authService.VerifyToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	// Reject schemas the compiler cannot use before anything is persisted
	if _, err := jsonschema.NewCompiler().Compile(req.Schema); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("schema does not compile: %v", err))
	}

	contentType := &domain.ContentType{
		Name:        req.Name,
		Description: req.Description,
		Schema:      req.Schema,
	}

	if err := s.contentTypeRepo.Create(ctx, contentType); err != nil {
		return nil, fmt.Errorf("failed to create content type: %w", err)
	}

	s.audit(ctx, admin.ID, domain.CMSActionCreate, "content_type", contentType.ID, map[string]interface{}{
		"name": contentType.Name,
	})

	return contentType, nil
}

func (s *ContentService) ListContentTypes(ctx context.Context, token string) ([]*domain.ContentType, error) {
	if _, err := s.authService.VerifyToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}
	return s.contentTypeRepo.List(ctx)
}

func (s *ContentService) GetContentType(ctx context.Context, token string, id string) (*domain.ContentType, error) {
	if _, err := s.authService.VerifyToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}
	return s.contentTypeRepo.GetByID(ctx, id)
}

func (s *ContentService) CreateContentItem(ctx context.Context, token string, req *domain.CreateContentItemRequest) (*domain.ContentItem, error) {
	admin, err := s.authService.VerifyToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	contentType, err := s.contentTypeRepo.GetByID(ctx, req.ContentTypeID)
	if err != nil {
		return nil, err
	}

	if err := s.validateAgainstSchema(contentType, req.Content); err != nil {
		return nil, err
	}

	item := &domain.ContentItem{
		ContentTypeID: req.ContentTypeID,
		ItemKey:       req.ItemKey,
		Content:       req.Content,
	}

	if err := s.contentRepo.CreateWithVersion(ctx, item, admin.ID); err != nil {
		return nil, fmt.Errorf("failed to create content item: %w", err)
	}

	s.audit(ctx, admin.ID, domain.CMSActionCreate, "content_item", item.ID, map[string]interface{}{
		"item_key": item.ItemKey,
	})

	return item, nil
}

func (s *ContentService) GetContentItem(ctx context.Context, token string, id string) (*domain.ContentItem, error) {
	if _, err := s.authService.VerifyToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}
	return s.contentRepo.GetByID(ctx, id)
}

func (s *ContentService) ListContentItems(ctx context.Context, token string, req *domain.ListContentItemsRequest) ([]*domain.ContentItem, error) {
	if _, err := s.authService.VerifyToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	return s.contentRepo.List(ctx, req)
}

// UpdateContentItem saves new content: the live column is overwritten and a
// version row appended. When a live lock exists for the item the caller
// must present its token; an expired lock never blocks a save.
func (s *ContentService) UpdateContentItem(ctx context.Context, token string, req *domain.UpdateContentItemRequest) (*domain.ContentItem, error) {
	admin, err := s.authService.VerifyToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	item, err := s.contentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.checkLock(ctx, req.ID, admin.ID, req.LockToken); err != nil {
		return nil, err
	}

	contentType, err := s.contentTypeRepo.GetByID(ctx, item.ContentTypeID)
	if err != nil {
		return nil, err
	}
	if err := s.validateAgainstSchema(contentType, req.Content); err != nil {
		return nil, err
	}

	item.Content = req.Content
	version, err := s.contentRepo.UpdateWithVersion(ctx, item, admin.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update content item: %w", err)
	}

	s.audit(ctx, admin.ID, domain.CMSActionUpdate, "content_item", item.ID, map[string]interface{}{
		"item_key":       item.ItemKey,
		"version_number": version.VersionNumber,
	})

	return item, nil
}

func (s *ContentService) DeleteContentItem(ctx context.Context, token string, id string) error {
	admin, err := s.authService.VerifyToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to authenticate admin: %w", err)
	}

	// Destructive: editors are not allowed
	if !admin.HasRole(domain.PublishRoles...) {
		return domain.ErrInsufficientPermissions
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit(ctx, admin.ID, domain.CMSActionDelete, "content_item", id, nil)

	return nil
}

func (s *ContentService) PublishContentItem(ctx context.Context, token string, id string, publish bool) (*domain.ContentItem, error) {
	admin, err := s.authService.VerifyToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}

	if !admin.HasRole(domain.PublishRoles...) {
		return nil, domain.ErrInsufficientPermissions
	}

	if err := s.contentRepo.SetPublished(ctx, id, publish, s.now(), admin.ID); err != nil {
		return nil, err
	}

	s.audit(ctx, admin.ID, domain.CMSActionPublish, "content_item", id, map[string]interface{}{
		"published": publish,
	})

	return s.contentRepo.GetByID(ctx, id)
}

func (s *ContentService) ListVersions(ctx context.Context, token string, contentItemID string) ([]*domain.ContentVersion, error) {
	if _, err := s.authService.VerifyToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}
	return s.contentRepo.ListVersions(ctx, contentItemID)
}

func (s *ContentService) GetVersion(ctx context.Context, token string, contentItemID string, versionNumber int) (*domain.ContentVersion, error) {
	if _, err := s.authService.VerifyToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}
	return s.contentRepo.GetVersion(ctx, contentItemID, versionNumber)
}

func (s *ContentService) AcquireLock(ctx context.Context, token string, contentItemID string) (*domain.ContentLock, error) {
	admin, err := s.authService.VerifyToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}

	lock, err := s.contentRepo.AcquireLock(ctx, contentItemID, admin.ID, s.now())
	if err != nil {
		return nil, err
	}

	s.audit(ctx, admin.ID, domain.CMSActionLock, "content_item", contentItemID, map[string]interface{}{
		"expires_at": lock.ExpiresAt.Format(time.RFC3339),
	})

	return lock, nil
}

func (s *ContentService) ReleaseLock(ctx context.Context, token string, contentItemID, lockToken string) error {
	admin, err := s.authService.VerifyToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to authenticate admin: %w", err)
	}

	if err := s.contentRepo.ReleaseLock(ctx, contentItemID, lockToken, admin.ID); err != nil {
		return err
	}

	s.audit(ctx, admin.ID, domain.CMSActionUnlock, "content_item", contentItemID, nil)

	return nil
}

// GetPublishedContent returns a published item by its key. This is the one
// unauthenticated read path: it backs the portal frontend, so drafts and
// unpublished items surface as not found rather than hinting they exist.
func (s *ContentService) GetPublishedContent(ctx context.Context, itemKey string) (*domain.ContentItem, error) {
	if itemKey == "" {
		return nil, domain.NewValidationError("item_key is required")
	}

	item, err := s.contentRepo.GetByKey(ctx, itemKey)
	if err != nil {
		return nil, err
	}
	if !item.IsPublished {
		return nil, &domain.ErrNotFound{Entity: "content item", ID: itemKey}
	}

	return item, nil
}

// ListActivityLogs returns the audit trail, newest first
func (s *ContentService) ListActivityLogs(ctx context.Context, token string, req *domain.ListCmsActivityLogsRequest) ([]*domain.CmsActivityLog, error) {
	if _, err := s.authService.VerifyToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to authenticate admin: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	return s.activityLogRepo.List(ctx, req)
}

// checkLock enforces the single-editor safeguard on saves: a live lock held
// by someone else rejects the save, a live lock held by the caller requires
// the matching token, and no live lock means the save proceeds.
func (s *ContentService) checkLock(ctx context.Context, contentItemID, adminID, lockToken string) error {
	lock, err := s.contentRepo.GetLock(ctx, contentItemID, s.now())
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to check lock: %w", err)
	}

	if lock.AdminID != adminID {
		return &domain.ErrLockConflict{ContentItemID: contentItemID, ExpiresAt: lock.ExpiresAt}
	}
	if lock.LockToken != lockToken {
		return domain.NewValidationError("lock_token does not match the held lock")
	}

	return nil
}

func (s *ContentService) validateAgainstSchema(contentType *domain.ContentType, content map[string]interface{}) error {
	schema, err := jsonschema.NewCompiler().Compile(contentType.Schema)
	if err != nil {
		return fmt.Errorf("failed to compile content type schema: %w", err)
	}

	result := schema.Validate(content)
	if !result.Valid {
		return domain.NewValidationError(fmt.Sprintf("content does not match the %s schema: %v", contentType.Name, result.Errors))
	}

	return nil
}

// audit appends one activity log row. Audit failures are logged and
// swallowed: the log is observability, never a reason to fail a mutation.
func (s *ContentService) audit(ctx context.Context, adminID, action, resourceType, resourceID string, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	entry := &domain.CmsActivityLog{
		AdminID:      adminID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
	}

	if err := s.activityLogRepo.Create(ctx, entry); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"error":    err.Error(),
			"admin_id": adminID,
			"action":   action,
		}).Error("Failed to write cms activity log")
	}
}
