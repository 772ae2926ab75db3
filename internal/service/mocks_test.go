package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

// MockUserRepository is a mock implementation of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByExternalAuthID(ctx context.Context, externalAuthID string) (*domain.User, error) {
	args := m.Called(ctx, externalAuthID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, req *domain.ListUsersRequest) ([]*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// MockProgressRepository is a mock implementation of the ProgressRepository interface
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, userID, stepID string) (*domain.OnboardingProgress, error) {
	args := m.Called(ctx, userID, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnboardingProgress), args.Error(1)
}

func (m *MockProgressRepository) ListByUser(ctx context.Context, userID string) ([]*domain.OnboardingProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OnboardingProgress), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress *domain.OnboardingProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// MockActivityRepository is a mock implementation of the ActivityRepository interface
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.UserActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, req *domain.ListActivitiesRequest) ([]*domain.UserActivity, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserActivity), args.Error(1)
}

// MockSessionRepository is a mock implementation of the SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, sessionID string) (*domain.UserSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSession), args.Error(1)
}

func (m *MockSessionRepository) TouchLastActivity(ctx context.Context, sessionID string, at time.Time) error {
	args := m.Called(ctx, sessionID, at)
	return args.Error(0)
}

func (m *MockSessionRepository) End(ctx context.Context, sessionID string, at time.Time) error {
	args := m.Called(ctx, sessionID, at)
	return args.Error(0)
}

// MockGuideRepository is a mock implementation of the GuideRepository interface
type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) GetByType(ctx context.Context, guideType string) (*domain.GuideConfig, error) {
	args := m.Called(ctx, guideType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuideConfig), args.Error(1)
}

func (m *MockGuideRepository) List(ctx context.Context) ([]*domain.GuideConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GuideConfig), args.Error(1)
}

func (m *MockGuideRepository) Upsert(ctx context.Context, guide *domain.GuideConfig) error {
	args := m.Called(ctx, guide)
	return args.Error(0)
}

// MockVenueRepository is a mock implementation of the VenueRepository interface
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) GetVenueByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) ListVenuesByUser(ctx context.Context, userID string) ([]*domain.Venue, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) CreateTeamMember(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockVenueRepository) ListTeamMembers(ctx context.Context, venueID string) ([]*domain.TeamMember, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamMember), args.Error(1)
}

func (m *MockVenueRepository) CreateTask(ctx context.Context, task *domain.OnboardingTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockVenueRepository) GetTaskByID(ctx context.Context, id string) (*domain.OnboardingTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnboardingTask), args.Error(1)
}

func (m *MockVenueRepository) ListTasks(ctx context.Context, venueID string) ([]*domain.OnboardingTask, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OnboardingTask), args.Error(1)
}

func (m *MockVenueRepository) UpdateTask(ctx context.Context, task *domain.OnboardingTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// MockCmsAdminRepository is a mock implementation of the CmsAdminRepository interface
type MockCmsAdminRepository struct {
	mock.Mock
}

func (m *MockCmsAdminRepository) Create(ctx context.Context, admin *domain.CmsAdmin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockCmsAdminRepository) GetByID(ctx context.Context, id string) (*domain.CmsAdmin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CmsAdmin), args.Error(1)
}

func (m *MockCmsAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.CmsAdmin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CmsAdmin), args.Error(1)
}

func (m *MockCmsAdminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockContentTypeRepository is a mock implementation of the ContentTypeRepository interface
type MockContentTypeRepository struct {
	mock.Mock
}

func (m *MockContentTypeRepository) Create(ctx context.Context, contentType *domain.ContentType) error {
	args := m.Called(ctx, contentType)
	return args.Error(0)
}

func (m *MockContentTypeRepository) GetByID(ctx context.Context, id string) (*domain.ContentType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentType), args.Error(1)
}

func (m *MockContentTypeRepository) List(ctx context.Context) ([]*domain.ContentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContentType), args.Error(1)
}

// MockContentRepository is a mock implementation of the ContentRepository interface
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) CreateWithVersion(ctx context.Context, item *domain.ContentItem, createdBy string) error {
	args := m.Called(ctx, item, createdBy)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentRepository) GetByKey(ctx context.Context, itemKey string) (*domain.ContentItem, error) {
	args := m.Called(ctx, itemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context, req *domain.ListContentItemsRequest) ([]*domain.ContentItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContentItem), args.Error(1)
}

func (m *MockContentRepository) UpdateWithVersion(ctx context.Context, item *domain.ContentItem, updatedBy string) (*domain.ContentVersion, error) {
	args := m.Called(ctx, item, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentVersion), args.Error(1)
}

func (m *MockContentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) SetPublished(ctx context.Context, id string, published bool, at time.Time, updatedBy string) error {
	args := m.Called(ctx, id, published, at, updatedBy)
	return args.Error(0)
}

func (m *MockContentRepository) ListVersions(ctx context.Context, contentItemID string) ([]*domain.ContentVersion, error) {
	args := m.Called(ctx, contentItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContentVersion), args.Error(1)
}

func (m *MockContentRepository) GetVersion(ctx context.Context, contentItemID string, versionNumber int) (*domain.ContentVersion, error) {
	args := m.Called(ctx, contentItemID, versionNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentVersion), args.Error(1)
}

func (m *MockContentRepository) AcquireLock(ctx context.Context, contentItemID, adminID string, now time.Time) (*domain.ContentLock, error) {
	args := m.Called(ctx, contentItemID, adminID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentLock), args.Error(1)
}

func (m *MockContentRepository) GetLock(ctx context.Context, contentItemID string, now time.Time) (*domain.ContentLock, error) {
	args := m.Called(ctx, contentItemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentLock), args.Error(1)
}

func (m *MockContentRepository) ReleaseLock(ctx context.Context, contentItemID, lockToken, adminID string) error {
	args := m.Called(ctx, contentItemID, lockToken, adminID)
	return args.Error(0)
}

// MockCmsActivityLogRepository is a mock implementation of the CmsActivityLogRepository interface
type MockCmsActivityLogRepository struct {
	mock.Mock
}

func (m *MockCmsActivityLogRepository) Create(ctx context.Context, log *domain.CmsActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockCmsActivityLogRepository) List(ctx context.Context, req *domain.ListCmsActivityLogsRequest) ([]*domain.CmsActivityLog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CmsActivityLog), args.Error(1)
}

// MockCMSAuthService is a mock implementation of the CMSAuthService interface
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
