package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/crypto"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

const testJWTSecret = "test-secret-key"

func newTestAdmin(t *testing.T, role string) *domain.CmsAdmin {
	t.Helper()
	hash, err := crypto.HashPassword("correct-horse")
	require.NoError(t, err)
	return &domain.CmsAdmin{
		ID:           "admin-1",
		Email:        "editor@venuelaunch.app",
		PasswordHash: hash,
		Name:         "Editor",
		Role:         role,
		IsActive:     true,
	}
}

func TestCMSAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a token", func(t *testing.T) {
		repo := new(MockCmsAdminRepository)
		logRepo := new(MockCmsActivityLogRepository)
		svc := NewCMSAuthService(repo, logRepo, testJWTSecret, logger.NewTestLogger(t))

		admin := newTestAdmin(t, domain.CMSRoleEditor)
		repo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		repo.On("UpdateLastLogin", ctx, admin.ID, mock.Anything).Return(nil)
		logRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.CmsActivityLog) bool {
			return l.Action == domain.CMSActionLogin && l.AdminID == admin.ID
		})).Return(nil)

		resp, err := svc.Login(ctx, &domain.CMSLoginRequest{
			Email:    admin.Email,
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.WithinDuration(t, time.Now().Add(domain.CMSTokenExpiry), resp.ExpiresAt, time.Minute)
		require.NotNil(t, resp.Admin.LastLogin)

		// The issued token verifies back to the same admin
		repo.On("GetByID", ctx, admin.ID).Return(admin, nil)
		verified, err := svc.VerifyToken(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, verified.ID)
		assert.Equal(t, admin.Role, verified.Role)
	})

	t.Run("wrong password uses the same generic message as unknown email", func(t *testing.T) {
		repo := new(MockCmsAdminRepository)
		logRepo := new(MockCmsActivityLogRepository)
		svc := NewCMSAuthService(repo, logRepo, testJWTSecret, logger.NewTestLogger(t))

		admin := newTestAdmin(t, domain.CMSRoleEditor)
		repo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		repo.On("GetByEmail", ctx, "nobody@venuelaunch.app").
			Return(nil, &domain.ErrNotFound{Entity: "cms admin", ID: "nobody@venuelaunch.app"})

		_, badPassErr := svc.Login(ctx, &domain.CMSLoginRequest{Email: admin.Email, Password: "wrong"})
		_, unknownErr := svc.Login(ctx, &domain.CMSLoginRequest{Email: "nobody@venuelaunch.app", Password: "wrong"})

		require.Error(t, badPassErr)
		require.Error(t, unknownErr)
		assert.Equal(t, badPassErr.Error(), unknownErr.Error())
		repo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deactivated admin cannot log in", func(t *testing.T) {
		repo := new(MockCmsAdminRepository)
		logRepo := new(MockCmsActivityLogRepository)
		svc := NewCMSAuthService(repo, logRepo, testJWTSecret, logger.NewTestLogger(t))

		admin := newTestAdmin(t, domain.CMSRoleEditor)
		admin.IsActive = false
		repo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)

		_, err := svc.Login(ctx, &domain.CMSLoginRequest{Email: admin.Email, Password: "correct-horse"})
		require.Error(t, err)

		var authErr *domain.AuthError
		assert.ErrorAs(t, err, &authErr)
	})
}

func TestCMSAuthService_VerifyToken(t *testing.T) {
	ctx := context.Background()

	issueToken := func(t *testing.T, svc *CMSAuthService, repo *MockCmsAdminRepository, admin *domain.CmsAdmin, logRepo *MockCmsActivityLogRepository) string {
		t.Helper()
		repo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		repo.On("UpdateLastLogin", ctx, admin.ID, mock.Anything).Return(nil)
		logRepo.On("Create", ctx, mock.Anything).Return(nil)
		resp, err := svc.Login(ctx, &domain.CMSLoginRequest{Email: admin.Email, Password: "correct-horse"})
		require.NoError(t, err)
		return resp.Token
	}

	t.Run("expired token rejected", func(t *testing.T) {
		repo := new(MockCmsAdminRepository)
		logRepo := new(MockCmsActivityLogRepository)
		svc := NewCMSAuthService(repo, logRepo, testJWTSecret, logger.NewTestLogger(t))

		admin := newTestAdmin(t, domain.CMSRoleAdmin)
		token := issueToken(t, svc, repo, admin, logRepo)

		// Move the clock past the 24h expiry
		svc.now = func() time.Time { return time.Now().UTC().Add(domain.CMSTokenExpiry + time.Hour) }

		_, err := svc.VerifyToken(ctx, token)
		require.Error(t, err)
		var authErr *domain.AuthError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("deactivated admin rejected even with a live token", func(t *testing.T) {
		repo := new(MockCmsAdminRepository)
		logRepo := new(MockCmsActivityLogRepository)
		svc := NewCMSAuthService(repo, logRepo, testJWTSecret, logger.NewTestLogger(t))

		admin := newTestAdmin(t, domain.CMSRoleAdmin)
		token := issueToken(t, svc, repo, admin, logRepo)

		deactivated := *admin
		deactivated.IsActive = false
		repo.On("GetByID", ctx, admin.ID).Return(&deactivated, nil)

		_, err := svc.VerifyToken(ctx, token)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deactivated")
	})

	t.Run("token signed with a different secret rejected", func(t *testing.T) {
		repoA := new(MockCmsAdminRepository)
		logRepoA := new(MockCmsActivityLogRepository)
		other := NewCMSAuthService(repoA, logRepoA, "other-secret", logger.NewTestLogger(t))

		admin := newTestAdmin(t, domain.CMSRoleAdmin)
		token := issueToken(t, other, repoA, admin, logRepoA)

		repoB := new(MockCmsAdminRepository)
		svc := NewCMSAuthService(repoB, new(MockCmsActivityLogRepository), testJWTSecret, logger.NewTestLogger(t))

		_, err := svc.VerifyToken(ctx, token)
		require.Error(t, err)
		repoB.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		svc := NewCMSAuthService(new(MockCmsAdminRepository), new(MockCmsActivityLogRepository), testJWTSecret, logger.NewTestLogger(t))

		_, err := svc.VerifyToken(ctx, "not-a-token")
		require.Error(t, err)
	})
}
