package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// User roles
const (
	UserRoleClient = "client"
	UserRoleAdmin  = "admin"
)

// ValidUserRoles is the list of all valid portal user roles
var ValidUserRoles = []string{
	UserRoleClient,
	UserRoleAdmin,
}

// User is a portal account. Users are created on first sign-in and are never
// hard-deleted: deactivation flips is_active instead.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	ExternalAuthID string    `json:"external_auth_id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !govalidator.IsEmail(u.Email) {
		return fmt.Errorf("email is not valid")
	}
	if u.ExternalAuthID == "" {
		return fmt.Errorf("external_auth_id is required")
	}
	if !isValidUserRole(u.Role) {
		return fmt.Errorf("role must be one of: %v", ValidUserRoles)
	}
	return nil
}

func isValidUserRole(role string) bool {
	for _, r := range ValidUserRoles {
		if role == r {
			return true
		}
	}
	return false
}

// CreateUserRequest represents the API request to create a portal user on
// first sign-in
type CreateUserRequest struct {
	Email          string `json:"email"`
	ExternalAuthID string `json:"external_auth_id"`
	Name           string `json:"name"`
}

func (r *CreateUserRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("email is not valid")
	}
	if r.ExternalAuthID == "" {
		return fmt.Errorf("external_auth_id is required")
	}
	return nil
}

// UpdateUserRequest represents the API request to update a user.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.Role != nil && !isValidUserRole(*r.Role) {
		return fmt.Errorf("role must be one of: %v", ValidUserRoles)
	}
	return nil
}

// ListUsersRequest represents query parameters for listing users
type ListUsersRequest struct {
	IsActive *bool
	Limit    int
	Offset   int
}

func (r *ListUsersRequest) Validate() error {
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

// UserRepository defines persistence methods
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByExternalAuthID(ctx context.Context, externalAuthID string) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context, req *ListUsersRequest) ([]*User, error)
}

// UserService defines business logic
type UserService interface {
	GetOrCreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	GetUserByExternalAuthID(ctx context.Context, externalAuthID string) (*User, error)
	UpdateUser(ctx context.Context, req *UpdateUserRequest) (*User, error)
	ListUsers(ctx context.Context, req *ListUsersRequest) ([]*User, error)
}
