package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// CMS admin roles
const (
	CMSRoleSuperAdmin = "super_admin"
	CMSRoleAdmin      = "admin"
	CMSRoleEditor     = "editor"
)

// ValidCMSRoles is the list of all valid CMS admin roles
var ValidCMSRoles = []string{
	CMSRoleSuperAdmin,
	CMSRoleAdmin,
	CMSRoleEditor,
}

// PublishRoles are the roles allowed to publish or delete content. Editors
// can create and edit but not publish or destroy.
var PublishRoles = []string{
	CMSRoleSuperAdmin,
	CMSRoleAdmin,
}

// CMSTokenExpiry is the lifetime of a signed admin token
const CMSTokenExpiry = 24 * time.Hour

// CmsAdmin is the authentication principal for the CMS, separate from the
// portal users table.
type CmsAdmin struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Validate validates the admin
func (a *CmsAdmin) Validate() error {
	if a.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !govalidator.IsEmail(a.Email) {
		return fmt.Errorf("email is not valid")
	}
	if !isValidCMSRole(a.Role) {
		return fmt.Errorf("role must be one of: %v", ValidCMSRoles)
	}
	return nil
}

// HasRole reports whether the admin's role is in the allow-list
func (a *CmsAdmin) HasRole(roles ...string) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

func isValidCMSRole(role string) bool {
	for _, r := range ValidCMSRoles {
		if role == r {
			return true
		}
	}
	return false
}

// CMSLoginRequest represents the API request to authenticate an admin
type CMSLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CMSLoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("email is not valid")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// CMSLoginResponse carries the signed token back to the editor UI
type CMSLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     *CmsAdmin `json:"admin"`
}

// CmsAdminRepository defines persistence methods
type CmsAdminRepository interface {
	Create(ctx context.Context, admin *CmsAdmin) error
	GetByID(ctx context.Context, id string) (*CmsAdmin, error)
	GetByEmail(ctx context.Context, email string) (*CmsAdmin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// CMSAuthService defines login and token verification. VerifyToken resolves
// the token back to a live admin row on every request, so a deactivated
// admin is rejected even while the token is unexpired.
type CMSAuthService interface {
	Login(ctx context.Context, req *CMSLoginRequest) (*CMSLoginResponse, error)
	VerifyToken(ctx context.Context, token string) (*CmsAdmin, error)
}
