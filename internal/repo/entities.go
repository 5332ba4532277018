package repo

import (
	"time"

	"github.com/plankhq/plank/internal/model"
	"github.com/plankhq/plank/internal/storage"
)

// Collection names. One JSON document per collection under the storage
// directory.
const (
	UsersCollection = "users"
	TeamsCollection = "teams"
	TasksCollection = "tasks"
)

// Users returns the repository for the users collection.
func Users(store *storage.Store) *Repository[model.User] {
	return New(store, Descriptor[model.User]{
		Collection: UsersCollection,
		Kind:       "user",
		Validate:   model.User.Validate,
		ID:         func(u model.User) string { return u.ID },
		WithID: func(u model.User, id string) model.User {
			u.ID = id
			return u
		},
		Defaults: func(u model.User) model.User {
			if u.CreatedAt.IsZero() {
				u.CreatedAt = time.Now().UTC()
			}
			return u
		},
	})
}

// Teams returns the repository for the teams collection.
func Teams(store *storage.Store) *Repository[model.Team] {
	return New(store, Descriptor[model.Team]{
		Collection: TeamsCollection,
		Kind:       "team",
		Validate:   model.Team.Validate,
		ID:         func(t model.Team) string { return t.ID },
		WithID: func(t model.Team, id string) model.Team {
			t.ID = id
			return t
		},
		Defaults: func(t model.Team) model.Team {
			if t.MemberIDs == nil {
				t.MemberIDs = []string{}
			}
			if t.CreatedAt.IsZero() {
				t.CreatedAt = time.Now().UTC()
			}
			return t
		},
	})
}

// Tasks returns the repository for the tasks collection.
func Tasks(store *storage.Store) *Repository[model.Task] {
	return New(store, Descriptor[model.Task]{
		Collection: TasksCollection,
		Kind:       "task",
		Validate:   model.Task.Validate,
		ID:         func(t model.Task) string { return t.ID },
		WithID: func(t model.Task, id string) model.Task {
			t.ID = id
			return t
		},
		Defaults: func(t model.Task) model.Task {
			t.SetDefaults()
			if t.CreatedAt.IsZero() {
				t.CreatedAt = time.Now().UTC()
			}
			return t
		},
	})
}
