// Package board implements the operations that span more than one
// collection: membership, task assignment, and guarded deletes. It is the
// only place referential integrity between users, teams, and tasks is
// enforced.
//
// The service holds no state of its own and never caches: every operation
// re-reads the collections through the repositories, so it always works
// from the latest on-disk state.
package board

import (
	"fmt"

	"github.com/plankhq/plank/internal/model"
	"github.com/plankhq/plank/internal/repo"
	"github.com/plankhq/plank/internal/storage"
)

// Service composes the user, team, and task repositories.
type Service struct {
	users *repo.Repository[model.User]
	teams *repo.Repository[model.Team]
	tasks *repo.Repository[model.Task]
}

// NewService returns a board service over the given store.
func NewService(store *storage.Store) *Service {
	return &Service{
		users: repo.Users(store),
		teams: repo.Teams(store),
		tasks: repo.Tasks(store),
	}
}

// Users returns the user repository for single-entity reads.
func (s *Service) Users() *repo.Repository[model.User] { return s.users }

// Teams returns the team repository for single-entity reads.
func (s *Service) Teams() *repo.Repository[model.Team] { return s.teams }

// Tasks returns the task repository for single-entity reads.
func (s *Service) Tasks() *repo.Repository[model.Task] { return s.tasks }

// CreateUser creates a user after checking that the email is not already
// in use by another user.
func (s *Service) CreateUser(u model.User) (model.User, error) {
	if err := s.checkEmailFree(u.Email, ""); err != nil {
		return model.User{}, err
	}
	return s.users.Create(u)
}

// UserUpdate carries optional new values for a user. Nil fields are left
// unchanged.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UpdateUser applies the update to the user, re-checking email
// uniqueness when the email changes.
func (s *Service) UpdateUser(id string, upd UserUpdate) (model.User, error) {
	if upd.Email != nil {
		if err := s.checkEmailFree(*upd.Email, id); err != nil {
			return model.User{}, err
		}
	}
	return s.users.Update(id, func(u *model.User) {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
	})
}

// DeleteUser deletes a user. It fails with an IntegrityError while the
// user is still a member of any team or assigned to any task.
func (s *Service) DeleteUser(id string) error {
	if _, err := s.users.Get(id); err != nil {
		return err
	}
	teams, err := s.teams.List(func(t model.Team) bool { return t.HasMember(id) })
	if err != nil {
		return err
	}
	if len(teams) > 0 {
		return &model.IntegrityError{
			Entity: "user", ID: id,
			Reason: fmt.Sprintf("still a member of team %q; remove the membership first", teams[0].Name),
		}
	}
	tasks, err := s.tasks.List(func(t model.Task) bool { return t.AssigneeID == id })
	if err != nil {
		return err
	}
	if len(tasks) > 0 {
		return &model.IntegrityError{
			Entity: "user", ID: id,
			Reason: fmt.Sprintf("still assigned to task %q; unassign it first", tasks[0].Title),
		}
	}
	return s.users.Delete(id)
}

// CreateTeam creates a team after checking that the name is not already
// taken and that every listed member exists.
func (s *Service) CreateTeam(t model.Team) (model.Team, error) {
	if err := s.checkTeamNameFree(t.Name, ""); err != nil {
		return model.Team{}, err
	}
	for _, userID := range t.MemberIDs {
		if _, err := s.users.Get(userID); err != nil {
			return model.Team{}, err
		}
	}
	return s.teams.Create(t)
}

// TeamUpdate carries optional new values for a team. Nil fields are left
// unchanged. Membership is changed through AddMember and RemoveMember,
// not here.
type TeamUpdate struct {
	Name        *string
	Description *string
}

// UpdateTeam applies the update to the team, re-checking name uniqueness
// when the name changes.
func (s *Service) UpdateTeam(id string, upd TeamUpdate) (model.Team, error) {
	if upd.Name != nil {
		if err := s.checkTeamNameFree(*upd.Name, id); err != nil {
			return model.Team{}, err
		}
	}
	return s.teams.Update(id, func(t *model.Team) {
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
	})
}

// DeleteTeam deletes a team. It fails with an IntegrityError while any
// task still references the team or any member remains: tasks must be
// deleted and members removed explicitly first.
func (s *Service) DeleteTeam(id string) error {
	team, err := s.teams.Get(id)
	if err != nil {
		return err
	}
	tasks, err := s.tasks.List(func(t model.Task) bool { return t.TeamID == id })
	if err != nil {
		return err
	}
	if len(tasks) > 0 {
		return &model.IntegrityError{
			Entity: "team", ID: id,
			Reason: fmt.Sprintf("still has %d task(s); delete them first", len(tasks)),
		}
	}
	if len(team.MemberIDs) > 0 {
		return &model.IntegrityError{
			Entity: "team", ID: id,
			Reason: fmt.Sprintf("still has %d member(s); remove them first", len(team.MemberIDs)),
		}
	}
	return s.teams.Delete(id)
}

// AddMember adds a user to a team. Adding a user who is already a member
// is a no-op, so the call is idempotent.
func (s *Service) AddMember(teamID, userID string) (model.Team, error) {
	if _, err := s.users.Get(userID); err != nil {
		return model.Team{}, err
	}
	return s.teams.Update(teamID, func(t *model.Team) {
		if !t.HasMember(userID) {
			t.MemberIDs = append(t.MemberIDs, userID)
		}
	})
}

// RemoveMember removes a user from a team. It fails with an
// IntegrityError while the user is still assigned to any of the team's
// tasks: the task must be unassigned (or deleted) first.
func (s *Service) RemoveMember(teamID, userID string) (model.Team, error) {
	team, err := s.teams.Get(teamID)
	if err != nil {
		return model.Team{}, err
	}
	if !team.HasMember(userID) {
		return model.Team{}, &model.ValidationError{
			Entity: "team", Field: "memberIds",
			Reason: fmt.Sprintf("user %q is not a member", userID),
		}
	}
	assigned, err := s.tasks.List(func(t model.Task) bool {
		return t.TeamID == teamID && t.AssigneeID == userID
	})
	if err != nil {
		return model.Team{}, err
	}
	if len(assigned) > 0 {
		return model.Team{}, &model.IntegrityError{
			Entity: "user", ID: userID,
			Reason: fmt.Sprintf("still assigned to task %q on this team; unassign it first", assigned[0].Title),
		}
	}
	return s.teams.Update(teamID, func(t *model.Team) {
		members := t.MemberIDs[:0:0]
		for _, id := range t.MemberIDs {
			if id != userID {
				members = append(members, id)
			}
		}
		t.MemberIDs = members
	})
}

// CreateTask creates a task under a team. The team must exist and the
// assignee, if set, must be one of its members.
func (s *Service) CreateTask(t model.Task) (model.Task, error) {
	team, err := s.teams.Get(t.TeamID)
	if err != nil {
		return model.Task{}, err
	}
	if t.AssigneeID != "" && !team.HasMember(t.AssigneeID) {
		return model.Task{}, &model.ValidationError{
			Entity: "task", Field: "assigneeId", Reason: "user not on team",
		}
	}
	return s.tasks.Create(t)
}

// TaskUpdate carries optional new values for a task. Nil fields are left
// unchanged. Status changes go through SetStatus and assignment through
// AssignTask/UnassignTask.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// UpdateTask applies the update to the task.
func (s *Service) UpdateTask(id string, upd TaskUpdate) (model.Task, error) {
	return s.tasks.Update(id, func(t *model.Task) {
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
	})
}

// AssignTask assigns a task to a user, who must be a member of the
// task's team.
func (s *Service) AssignTask(taskID, userID string) (model.Task, error) {
	task, err := s.tasks.Get(taskID)
	if err != nil {
		return model.Task{}, err
	}
	team, err := s.teams.Get(task.TeamID)
	if err != nil {
		return model.Task{}, err
	}
	if !team.HasMember(userID) {
		return model.Task{}, &model.ValidationError{
			Entity: "task", Field: "assigneeId", Reason: "user not on team",
		}
	}
	return s.tasks.Update(taskID, func(t *model.Task) {
		t.AssigneeID = userID
	})
}

// UnassignTask clears a task's assignee.
func (s *Service) UnassignTask(taskID string) (model.Task, error) {
	return s.tasks.Update(taskID, func(t *model.Task) {
		t.AssigneeID = ""
	})
}

// SetStatus moves a task to the given status. Any transition within the
// enumerated set is allowed.
func (s *Service) SetStatus(taskID string, status model.Status) (model.Task, error) {
	if !status.Valid() {
		return model.Task{}, &model.ValidationError{
			Entity: "task", Field: "status",
			Reason: fmt.Sprintf("must be one of %v (got %q)", model.Statuses, status),
		}
	}
	return s.tasks.Update(taskID, func(t *model.Task) {
		t.Status = status
	})
}

// UserTeams returns every team the user belongs to.
func (s *Service) UserTeams(userID string) ([]model.Team, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	return s.teams.List(func(t model.Team) bool { return t.HasMember(userID) })
}

// TeamMembers resolves a team's member ids to user records, in member
// order.
func (s *Service) TeamMembers(teamID string) ([]model.User, error) {
	team, err := s.teams.Get(teamID)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(nil)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	members := make([]model.User, 0, len(team.MemberIDs))
	for _, id := range team.MemberIDs {
		if u, ok := byID[id]; ok {
			members = append(members, u)
		}
	}
	return members, nil
}

// TeamTasks returns every task on the team's board, in document order.
func (s *Service) TeamTasks(teamID string) ([]model.Task, error) {
	if _, err := s.teams.Get(teamID); err != nil {
		return nil, err
	}
	return s.tasks.List(func(t model.Task) bool { return t.TeamID == teamID })
}

func (s *Service) checkEmailFree(email, selfID string) error {
	users, err := s.users.List(func(u model.User) bool {
		return u.Email == email && u.ID != selfID
	})
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return &model.ValidationError{Entity: "user", Field: "email", Reason: "is already in use"}
	}
	return nil
}

func (s *Service) checkTeamNameFree(name, selfID string) error {
	teams, err := s.teams.List(func(t model.Team) bool {
		return t.Name == name && t.ID != selfID
	})
	if err != nil {
		return err
	}
	if len(teams) > 0 {
		return &model.ValidationError{Entity: "team", Field: "name", Reason: "must be unique"}
	}
	return nil
}
