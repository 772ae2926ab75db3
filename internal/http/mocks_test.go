package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

// MockProgressService is a mock of domain.ProgressService
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) TrackProgress(ctx context.Context, req *domain.TrackProgressRequest) (*domain.OnboardingProgress, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnboardingProgress), args.Error(1)
}

func (m *MockProgressService) GetProgress(ctx context.Context, userID string) (*domain.ProgressSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgressSummary), args.Error(1)
}

// MockCMSAuthService is a mock of domain.CMSAuthService
type MockCMSAuthService struct {
	mock.Mock
}

func (m *MockCMSAuthService) Login(ctx context.Context, req *domain.CMSLoginRequest) (*domain.CMSLoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CMSLoginResponse), args.Error(1)
}

func (m *MockCMSAuthService) VerifyToken(ctx context.Context, token string) (*domain.CmsAdmin, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CmsAdmin), args.Error(1)
}

// MockContentService is a mock of domain.ContentService
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) CreateContentType(ctx context.Context, token string, req *domain.CreateContentTypeRequest) (*domain.ContentType, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentType), args.Error(1)
}

func (m *MockContentService) ListContentTypes(ctx context.Context, token string) ([]*domain.ContentType, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContentType), args.Error(1)
}

func (m *MockContentService) GetContentType(ctx context.Context, token string, id string) (*domain.ContentType, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentType), args.Error(1)
}

func (m *MockContentService) CreateContentItem(ctx context.Context, token string, req *domain.CreateContentItemRequest) (*domain.ContentItem, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentService) GetContentItem(ctx context.Context, token string, id string) (*domain.ContentItem, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentService) ListContentItems(ctx context.Context, token string, req *domain.ListContentItemsRequest) ([]*domain.ContentItem, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContentItem), args.Error(1)
}

func (m *MockContentService) UpdateContentItem(ctx context.Context, token string, req *domain.UpdateContentItemRequest) (*domain.ContentItem, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentService) DeleteContentItem(ctx context.Context, token string, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockContentService) PublishContentItem(ctx context.Context, token string, id string, publish bool) (*domain.ContentItem, error) {
	args := m.Called(ctx, token, id, publish)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentService) ListVersions(ctx context.Context, token string, contentItemID string) ([]*domain.ContentVersion, error) {
	args := m.Called(ctx, token, contentItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContentVersion), args.Error(1)
}

func (m *MockContentService) GetVersion(ctx context.Context, token string, contentItemID string, versionNumber int) (*domain.ContentVersion, error) {
	args := m.Called(ctx, token, contentItemID, versionNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentVersion), args.Error(1)
}

func (m *MockContentService) AcquireLock(ctx context.Context, token string, contentItemID string) (*domain.ContentLock, error) {
	args := m.Called(ctx, token, contentItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentLock), args.Error(1)
}

func (m *MockContentService) ReleaseLock(ctx context.Context, token string, contentItemID, lockToken string) error {
	args := m.Called(ctx, token, contentItemID, lockToken)
	return args.Error(0)
}

func (m *MockContentService) GetPublishedContent(ctx context.Context, itemKey string) (*domain.ContentItem, error) {
	args := m.Called(ctx, itemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}
