package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/crypto"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// CMSClaims is the JWT payload embedded in CMS admin tokens
type CMSClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type CMSAuthService struct {
	repo            domain.CmsAdminRepository
	activityLogRepo domain.CmsActivityLogRepository
	jwtSecret       string
	logger          logger.Logger

	// overridable in tests
	now func() time.Time
}

func NewCMSAuthService(repo domain.CmsAdminRepository, activityLogRepo domain.CmsActivityLogRepository, jwtSecret string, logger logger.Logger) *CMSAuthService {
	return &CMSAuthService{
		repo:            repo,
		activityLogRepo: activityLogRepo,
		jwtSecret:       jwtSecret,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Login validates credentials, updates last_login and issues a signed
// HS256 token with a 24 hour expiry
func (s *CMSAuthService) Login(ctx context.Context, req *domain.CMSLoginRequest) (*domain.CMSLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	admin, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same message for unknown email and bad password
		return nil, domain.NewAuthError("invalid email or password")
	}

	if !admin.IsActive {
		return nil, domain.NewAuthError("invalid email or password")
	}

	if !crypto.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.logger.WithField("email", req.Email).Warn("CMS login failed")
		return nil, domain.NewAuthError("invalid email or password")
	}

	now := s.now()
	if err := s.repo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	admin.LastLogin = &now

	expiresAt := now.Add(domain.CMSTokenExpiry)
	token, err := s.generateToken(admin, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"admin_id": admin.ID,
		"role":     admin.Role,
	}).Info("CMS admin logged in")

	logEntry := &domain.CmsActivityLog{
		AdminID:      admin.ID,
		Action:       domain.CMSActionLogin,
		ResourceType: "cms_admin",
		ResourceID:   admin.ID,
		Details:      map[string]interface{}{"email": admin.Email},
	}
	if err := s.activityLogRepo.Create(ctx, logEntry); err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to write cms activity log")
	}

	return &domain.CMSLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin,
	}, nil
}

// VerifyToken parses and verifies the signed token, then resolves it back
// to a live admin row. A token for a deactivated admin fails even while
// unexpired.
func (s *CMSAuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.CmsAdmin, error) {
	claims := &CMSClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, domain.NewAuthError(fmt.Sprintf("invalid token: %v", err))
	}
	if !token.Valid {
		return nil, domain.NewAuthError("invalid token")
	}

	admin, err := s.repo.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, domain.NewAuthError("invalid token: admin not found")
	}
	if !admin.IsActive {
		return nil, domain.NewAuthError("invalid token: admin deactivated")
	}

	return admin, nil
}

func (s *CMSAuthService) generateToken(admin *domain.CmsAdmin, now, expiresAt time.Time) (string, error) {
	claims := CMSClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
