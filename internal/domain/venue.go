package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// Onboarding task statuses. Transitions only move forward:
// not_started -> in_progress -> completed.
const (
	TaskStatusNotStarted = "not_started"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

var taskStatusRank = map[string]int{
	TaskStatusNotStarted: 0,
	TaskStatusInProgress: 1,
	TaskStatusCompleted:  2,
}

// IsValidTaskStatus reports whether the status is known
func IsValidTaskStatus(status string) bool {
	_, ok := taskStatusRank[status]
	return ok
}

// CanTransitionTaskStatus reports whether a status change moves forward.
// Same-status updates are allowed so repeated saves stay idempotent.
func CanTransitionTaskStatus(from, to string) bool {
	fromRank, ok := taskStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := taskStatusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// Venue is a customer's physical business location being onboarded
type Venue struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate validates the venue
func (v *Venue) Validate() error {
	if v.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if v.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(v.Name) > 255 {
		return fmt.Errorf("name must be 255 characters or less")
	}
	return nil
}

// TeamMember belongs to one venue and may be assigned onboarding tasks
type TeamMember struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JobRole   string    `json:"job_role"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *TeamMember) Validate() error {
	if m.VenueID == "" {
		return fmt.Errorf("venue_id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Email != "" && !govalidator.IsEmail(m.Email) {
		return fmt.Errorf("email is not valid")
	}
	return nil
}

// OnboardingTask is one task in a venue's onboarding checklist, optionally
// assigned to a team member
type OnboardingTask struct {
	ID           string     `json:"id"`
	VenueID      string     `json:"venue_id"`
	TeamMemberID *string    `json:"team_member_id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (t *OnboardingTask) Validate() error {
	if t.VenueID == "" {
		return fmt.Errorf("venue_id is required")
	}
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !IsValidTaskStatus(t.Status) {
		return fmt.Errorf("status must be one of: %s, %s, %s", TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted)
	}
	return nil
}

// CreateVenueRequest represents the API request to create a venue
type CreateVenueRequest struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (r *CreateVenueRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// CreateTaskRequest represents the API request to add an onboarding task
type CreateTaskRequest struct {
	VenueID      string     `json:"venue_id"`
	TeamMemberID *string    `json:"team_member_id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	if r.VenueID == "" {
		return fmt.Errorf("venue_id is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// UpdateTaskRequest represents the API request to update a task's status or
// assignment
type UpdateTaskRequest struct {
	ID           string  `json:"id"`
	Status       *string `json:"status,omitempty"`
	TeamMemberID *string `json:"team_member_id,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.Status != nil && !IsValidTaskStatus(*r.Status) {
		return fmt.Errorf("status must be one of: %s, %s, %s", TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted)
	}
	return nil
}

// VenueRepository defines persistence methods for venues, team members and
// tasks
type VenueRepository interface {
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id string) (*Venue, error)
	ListVenuesByUser(ctx context.Context, userID string) ([]*Venue, error)
	UpdateVenue(ctx context.Context, venue *Venue) error

	CreateTeamMember(ctx context.Context, member *TeamMember) error
	ListTeamMembers(ctx context.Context, venueID string) ([]*TeamMember, error)

	CreateTask(ctx context.Context, task *OnboardingTask) error
	GetTaskByID(ctx context.Context, id string) (*OnboardingTask, error)
	ListTasks(ctx context.Context, venueID string) ([]*OnboardingTask, error)
	UpdateTask(ctx context.Context, task *OnboardingTask) error
}

// VenueService defines business logic
type VenueService interface {
	CreateVenue(ctx context.Context, req *CreateVenueRequest) (*Venue, error)
	ListVenues(ctx context.Context, userID string) ([]*Venue, error)

	AddTeamMember(ctx context.Context, member *TeamMember) (*TeamMember, error)
	ListTeamMembers(ctx context.Context, venueID string) ([]*TeamMember, error)

	CreateTask(ctx context.Context, req *CreateTaskRequest) (*OnboardingTask, error)
	ListTasks(ctx context.Context, venueID string) ([]*OnboardingTask, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*OnboardingTask, error)
}
