package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

type venueRepository struct {
	db *sql.DB
}

// NewVenueRepository creates a new PostgreSQL repository for venues, team
// members and onboarding tasks
func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	if venue.ID == "" {
		venue.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	query := `
		INSERT INTO venues (id, user_id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		venue.ID,
		venue.UserID,
		venue.Name,
		venue.Address,
		venue.CreatedAt,
		venue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}

	return nil
}

func (r *venueRepository) GetVenueByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `
		SELECT id, user_id, name, address, created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	var venue domain.Venue
	var address sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&venue.ID,
		&venue.UserID,
		&venue.Name,
		&address,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "venue", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	venue.Address = address.String

	return &venue, nil
}

func (r *venueRepository) ListVenuesByUser(ctx context.Context, userID string) ([]*domain.Venue, error) {
	query := `
		SELECT id, user_id, name, address, created_at, updated_at
		FROM venues
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	var venues []*domain.Venue
	for rows.Next() {
		var venue domain.Venue
		var address sql.NullString

		err := rows.Scan(
			&venue.ID,
			&venue.UserID,
			&venue.Name,
			&address,
			&venue.CreatedAt,
			&venue.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venue.Address = address.String

		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating venues: %w", err)
	}

	return venues, nil
}

func (r *venueRepository) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	venue.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE venues
		SET name = $1, address = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := r.db.ExecContext(ctx, query,
		venue.Name,
		venue.Address,
		venue.UpdatedAt,
		venue.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update venue: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "venue", ID: venue.ID}
	}

	return nil
}

func (r *venueRepository) CreateTeamMember(ctx context.Context, member *domain.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO team_members (id, venue_id, name, email, job_role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.VenueID,
		member.Name,
		member.Email,
		member.JobRole,
		member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}

	return nil
}

func (r *venueRepository) ListTeamMembers(ctx context.Context, venueID string) ([]*domain.TeamMember, error) {
	query := `
		SELECT id, venue_id, name, email, job_role, created_at
		FROM team_members
		WHERE venue_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		var email, jobRole sql.NullString

		err := rows.Scan(
			&member.ID,
			&member.VenueID,
			&member.Name,
			&email,
			&jobRole,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		member.Email = email.String
		member.JobRole = jobRole.String

		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team members: %w", err)
	}

	return members, nil
}

func (r *venueRepository) CreateTask(ctx context.Context, task *domain.OnboardingTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = domain.TaskStatusNotStarted
	}

	query := `
		INSERT INTO onboarding_tasks (id, venue_id, team_member_id, title, description, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.VenueID,
		task.TeamMemberID,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *venueRepository) GetTaskByID(ctx context.Context, id string) (*domain.OnboardingTask, error) {
	query := `
		SELECT id, venue_id, team_member_id, title, description, status, due_date, created_at, updated_at
		FROM onboarding_tasks
		WHERE id = $1
	`

	var task domain.OnboardingTask
	var teamMemberID, description sql.NullString
	var dueDate sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.VenueID,
		&teamMemberID,
		&task.Title,
		&description,
		&task.Status,
		&dueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "task", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if teamMemberID.Valid {
		task.TeamMemberID = &teamMemberID.String
	}
	task.Description = description.String
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}

	return &task, nil
}

func (r *venueRepository) ListTasks(ctx context.Context, venueID string) ([]*domain.OnboardingTask, error) {
	query := `
		SELECT id, venue_id, team_member_id, title, description, status, due_date, created_at, updated_at
		FROM onboarding_tasks
		WHERE venue_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.OnboardingTask
	for rows.Next() {
		var task domain.OnboardingTask
		var teamMemberID, description sql.NullString
		var dueDate sql.NullTime

		err := rows.Scan(
			&task.ID,
			&task.VenueID,
			&teamMemberID,
			&task.Title,
			&description,
			&task.Status,
			&dueDate,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		if teamMemberID.Valid {
			task.TeamMemberID = &teamMemberID.String
		}
		task.Description = description.String
		if dueDate.Valid {
			task.DueDate = &dueDate.Time
		}

		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

func (r *venueRepository) UpdateTask(ctx context.Context, task *domain.OnboardingTask) error {
	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE onboarding_tasks
		SET team_member_id = $1, title = $2, description = $3, status = $4, due_date = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		task.TeamMemberID,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "task", ID: task.ID}
	}

	return nil
}
