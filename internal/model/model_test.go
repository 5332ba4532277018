package model

import (
	"errors"
	"strings"
	"testing"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid user",
			user: User{Name: "Alice", Email: "alice@example.com"},
		},
		{
			name:    "missing name",
			user:    User{Email: "alice@example.com"},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "missing email",
			user:    User{Name: "Alice"},
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name:    "name too long",
			user:    User{Name: strings.Repeat("a", MaxNameLen+1), Email: "a@b"},
			wantErr: true,
			errMsg:  "64 characters or less",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() succeeded, want error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
				}
				if !IsValidation(err) {
					t.Errorf("IsValidation() = false for %v", err)
				}
			} else if err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
		})
	}
}

func TestTeam_Validate(t *testing.T) {
	manyMembers := make([]string, MaxTeamMembers+1)
	for i := range manyMembers {
		manyMembers[i] = strings.Repeat("x", i+1)
	}

	tests := []struct {
		name    string
		team    Team
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid team",
			team: Team{Name: "Platform", MemberIDs: []string{"u1", "u2"}},
		},
		{
			name: "valid team with no members",
			team: Team{Name: "Platform"},
		},
		{
			name:    "missing name",
			team:    Team{},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "description too long",
			team:    Team{Name: "Platform", Description: strings.Repeat("d", MaxDescriptionLen+1)},
			wantErr: true,
			errMsg:  "128 characters or less",
		},
		{
			name:    "duplicate member id",
			team:    Team{Name: "Platform", MemberIDs: []string{"u1", "u2", "u1"}},
			wantErr: true,
			errMsg:  `duplicate id "u1"`,
		},
		{
			name:    "too many members",
			team:    Team{Name: "Platform", MemberIDs: manyMembers},
			wantErr: true,
			errMsg:  "50 members or less",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.team.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() succeeded, want error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
		})
	}
}

func TestTask_Validate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid task",
			task: Task{TeamID: "t1", Title: "Ship it", Status: StatusTodo},
		},
		{
			name: "valid task in progress",
			task: Task{TeamID: "t1", Title: "Ship it", Status: StatusInProgress},
		},
		{
			name:    "missing team",
			task:    Task{Title: "Ship it", Status: StatusTodo},
			wantErr: true,
			errMsg:  "teamId is required",
		},
		{
			name:    "missing title",
			task:    Task{TeamID: "t1", Status: StatusTodo},
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name:    "status outside the enumerated set",
			task:    Task{TeamID: "t1", Title: "Ship it", Status: "blocked"},
			wantErr: true,
			errMsg:  `got "blocked"`,
		},
		{
			name:    "empty status",
			task:    Task{TeamID: "t1", Title: "Ship it"},
			wantErr: true,
			errMsg:  "must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() succeeded, want error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
		})
	}
}

func TestTask_SetDefaults(t *testing.T) {
	task := Task{TeamID: "t1", Title: "Ship it"}
	task.SetDefaults()
	if task.Status != StatusTodo {
		t.Errorf("Status = %q, want %q", task.Status, StatusTodo)
	}

	task = Task{TeamID: "t1", Title: "Ship it", Status: StatusDone}
	task.SetDefaults()
	if task.Status != StatusDone {
		t.Errorf("SetDefaults overwrote status, got %q", task.Status)
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("Status %q should be valid", s)
		}
	}
	for _, s := range []Status{"", "blocked", "OPEN", "Done"} {
		if s.Valid() {
			t.Errorf("Status %q should not be valid", s)
		}
	}
}

func TestTeam_HasMember(t *testing.T) {
	team := Team{Name: "Platform", MemberIDs: []string{"u1", "u2"}}
	if !team.HasMember("u1") {
		t.Error("HasMember(u1) = false, want true")
	}
	if team.HasMember("u3") {
		t.Error("HasMember(u3) = true, want false")
	}
}

func TestErrorHelpers(t *testing.T) {
	verr := &ValidationError{Entity: "task", Field: "status", Reason: "bad"}
	nerr := &NotFoundError{Entity: "user", ID: "u1"}
	ierr := &IntegrityError{Entity: "team", ID: "t1", Reason: "still has tasks"}

	if !IsValidation(verr) || IsValidation(nerr) || IsValidation(ierr) {
		t.Error("IsValidation misclassified an error")
	}
	if !IsNotFound(nerr) || IsNotFound(verr) {
		t.Error("IsNotFound misclassified an error")
	}
	if !IsIntegrity(ierr) || IsIntegrity(nerr) {
		t.Error("IsIntegrity misclassified an error")
	}

	// Helpers must see through wrapping.
	wrapped := errors.Join(errors.New("context"), nerr)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should unwrap joined errors")
	}
}
