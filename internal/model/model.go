// Package model defines the persisted entities (users, teams, tasks) and
// their validation rules.
//
// Validation is pure: it inspects a single proposed record and never
// consults storage, so it cannot check cross-entity references. Those
// checks belong to the board service, which sees all three collections.
package model

import (
	"fmt"
	"time"
)

// Field length limits shared by all entities.
const (
	MaxNameLen        = 64
	MaxDescriptionLen = 128
)

// MaxTeamMembers caps how many users a single team can hold.
const MaxTeamMembers = 50

// Status is the workflow state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists every allowed task status, in workflow order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// User is a person who can belong to teams and be assigned tasks.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the user's own fields. Email uniqueness is checked by
// the board service, which can see the whole collection.
func (u User) Validate() error {
	if u.Name == "" {
		return &ValidationError{Entity: "user", Field: "name", Reason: "is required"}
	}
	if len(u.Name) > MaxNameLen {
		return &ValidationError{
			Entity: "user", Field: "name",
			Reason: fmt.Sprintf("must be %d characters or less (got %d)", MaxNameLen, len(u.Name)),
		}
	}
	if u.Email == "" {
		return &ValidationError{Entity: "user", Field: "email", Reason: "is required"}
	}
	return nil
}

// Team is a group of users. A team's board is not stored separately: it is
// the set of tasks whose TeamID points here.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MemberIDs   []string  `json:"memberIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks the team's own fields. Every id in MemberIDs must
// resolve to an existing user; the board service maintains that invariant.
func (t Team) Validate() error {
	if t.Name == "" {
		return &ValidationError{Entity: "team", Field: "name", Reason: "is required"}
	}
	if len(t.Name) > MaxNameLen {
		return &ValidationError{
			Entity: "team", Field: "name",
			Reason: fmt.Sprintf("must be %d characters or less (got %d)", MaxNameLen, len(t.Name)),
		}
	}
	if len(t.Description) > MaxDescriptionLen {
		return &ValidationError{
			Entity: "team", Field: "description",
			Reason: fmt.Sprintf("must be %d characters or less (got %d)", MaxDescriptionLen, len(t.Description)),
		}
	}
	if len(t.MemberIDs) > MaxTeamMembers {
		return &ValidationError{
			Entity: "team", Field: "memberIds",
			Reason: fmt.Sprintf("must hold %d members or less (got %d)", MaxTeamMembers, len(t.MemberIDs)),
		}
	}
	seen := make(map[string]bool, len(t.MemberIDs))
	for _, id := range t.MemberIDs {
		if seen[id] {
			return &ValidationError{Entity: "team", Field: "memberIds", Reason: fmt.Sprintf("contains duplicate id %q", id)}
		}
		seen[id] = true
	}
	return nil
}

// HasMember reports whether userID is in the team's member set.
func (t Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Task is a unit of work on a team's board.
type Task struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"teamId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	AssigneeID  string    `json:"assigneeId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks the task's own fields. TeamID and AssigneeID existence
// and team membership are the board service's job.
func (t Task) Validate() error {
	if t.TeamID == "" {
		return &ValidationError{Entity: "task", Field: "teamId", Reason: "is required"}
	}
	if t.Title == "" {
		return &ValidationError{Entity: "task", Field: "title", Reason: "is required"}
	}
	if len(t.Title) > MaxNameLen {
		return &ValidationError{
			Entity: "task", Field: "title",
			Reason: fmt.Sprintf("must be %d characters or less (got %d)", MaxNameLen, len(t.Title)),
		}
	}
	if len(t.Description) > MaxDescriptionLen {
		return &ValidationError{
			Entity: "task", Field: "description",
			Reason: fmt.Sprintf("must be %d characters or less (got %d)", MaxDescriptionLen, len(t.Description)),
		}
	}
	if !t.Status.Valid() {
		return &ValidationError{
			Entity: "task", Field: "status",
			Reason: fmt.Sprintf("must be one of %v (got %q)", Statuses, t.Status),
		}
	}
	return nil
}

// SetDefaults applies default values for optional fields.
func (t *Task) SetDefaults() {
	if t.Status == "" {
		t.Status = StatusTodo
	}
}
