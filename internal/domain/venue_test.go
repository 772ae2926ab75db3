package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTaskStatus(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"not started to in progress", TaskStatusNotStarted, TaskStatusInProgress, true},
		{"in progress to completed", TaskStatusInProgress, TaskStatusCompleted, true},
		{"skip straight to completed", TaskStatusNotStarted, TaskStatusCompleted, true},
		{"same status is idempotent", TaskStatusInProgress, TaskStatusInProgress, true},
		{"completed back to in progress", TaskStatusCompleted, TaskStatusInProgress, false},
		{"in progress back to not started", TaskStatusInProgress, TaskStatusNotStarted, false},
		{"unknown source", "archived", TaskStatusCompleted, false},
		{"unknown target", TaskStatusNotStarted, "archived", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionTaskStatus(tt.from, tt.to))
		})
	}
}

func TestTeamMember_Validate(t *testing.T) {
	valid := &TeamMember{VenueID: "venue-1", Name: "Sam", Email: "sam@thegoldenfork.com"}
	assert.NoError(t, valid.Validate())

	// Email is optional but must be well-formed when present
	noEmail := &TeamMember{VenueID: "venue-1", Name: "Sam"}
	assert.NoError(t, noEmail.Validate())

	badEmail := &TeamMember{VenueID: "venue-1", Name: "Sam", Email: "nope"}
	assert.Error(t, badEmail.Validate())

	assert.Error(t, (&TeamMember{Name: "Sam"}).Validate())
	assert.Error(t, (&TeamMember{VenueID: "venue-1"}).Validate())
}
