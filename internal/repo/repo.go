// Package repo provides a generic collection repository: load-validate-
// mutate-save over a JSON-backed collection, one repository per entity
// type.
//
// Every operation is a full read-modify-write of the collection through
// the storage layer. There is no caching: each call re-reads the backing
// file, so callers always see the latest on-disk state.
package repo

import (
	"github.com/google/uuid"

	"github.com/plankhq/plank/internal/model"
	"github.com/plankhq/plank/internal/storage"
)

// Descriptor tells a Repository how to handle one entity type. It is the
// only per-entity wiring: everything else is generic.
type Descriptor[T any] struct {
	// Collection is the storage collection name, e.g. "users".
	Collection string
	// Kind is the entity name used in error messages, e.g. "user".
	Kind string
	// Validate checks a single record's own fields.
	Validate func(T) error
	// ID extracts the record's id.
	ID func(T) string
	// WithID returns a copy of the record with the id set.
	WithID func(T, string) T
	// Defaults, if non-nil, fills optional fields before validation.
	Defaults func(T) T
}

// Repository exposes CRUD over one entity type's collection.
type Repository[T any] struct {
	store *storage.Store
	desc  Descriptor[T]
}

// New returns a repository for the described entity type, backed by the
// given store.
func New[T any](store *storage.Store, desc Descriptor[T]) *Repository[T] {
	return &Repository[T]{store: store, desc: desc}
}

// Kind returns the entity name this repository manages.
func (r *Repository[T]) Kind() string {
	return r.desc.Kind
}

// Collection returns the storage collection name.
func (r *Repository[T]) Collection() string {
	return r.desc.Collection
}

// Create validates the record, assigns it a fresh id, appends it to the
// collection, and saves. Any id already present on the record is
// discarded: the repository owns id assignment.
func (r *Repository[T]) Create(rec T) (T, error) {
	var zero T
	if r.desc.Defaults != nil {
		rec = r.desc.Defaults(rec)
	}
	if err := r.desc.Validate(rec); err != nil {
		return zero, err
	}
	records, err := storage.Load[T](r.store, r.desc.Collection)
	if err != nil {
		return zero, err
	}
	rec = r.desc.WithID(rec, r.freshID(records))
	records = append(records, rec)
	if err := storage.Save(r.store, r.desc.Collection, records); err != nil {
		return zero, err
	}
	return rec, nil
}

// Get returns the record with the given id.
func (r *Repository[T]) Get(id string) (T, error) {
	var zero T
	records, err := storage.Load[T](r.store, r.desc.Collection)
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if r.desc.ID(rec) == id {
			return rec, nil
		}
	}
	return zero, &model.NotFoundError{Entity: r.desc.Kind, ID: id}
}

// Update loads the record with the given id, applies mutate to a copy,
// re-validates, and saves. The id is immutable: a mutation that changes
// it fails with a ValidationError and nothing is persisted.
func (r *Repository[T]) Update(id string, mutate func(*T)) (T, error) {
	var zero T
	records, err := storage.Load[T](r.store, r.desc.Collection)
	if err != nil {
		return zero, err
	}
	for i, rec := range records {
		if r.desc.ID(rec) != id {
			continue
		}
		mutate(&rec)
		if r.desc.ID(rec) != id {
			return zero, &model.ValidationError{Entity: r.desc.Kind, Field: "id", Reason: "is immutable"}
		}
		if err := r.desc.Validate(rec); err != nil {
			return zero, err
		}
		records[i] = rec
		if err := storage.Save(r.store, r.desc.Collection, records); err != nil {
			return zero, err
		}
		return rec, nil
	}
	return zero, &model.NotFoundError{Entity: r.desc.Kind, ID: id}
}

// Delete removes the record with the given id. It enforces no
// cross-entity integrity; callers that need referential checks (the
// board service) must perform them first.
func (r *Repository[T]) Delete(id string) error {
	records, err := storage.Load[T](r.store, r.desc.Collection)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if r.desc.ID(rec) != id {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		return storage.Save(r.store, r.desc.Collection, records)
	}
	return &model.NotFoundError{Entity: r.desc.Kind, ID: id}
}

// List returns all records in document order, optionally filtered. The
// result is a snapshot, not a live view.
func (r *Repository[T]) List(filter func(T) bool) ([]T, error) {
	records, err := storage.Load[T](r.store, r.desc.Collection)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return records, nil
	}
	matched := make([]T, 0, len(records))
	for _, rec := range records {
		if filter(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// freshID generates a record id that does not collide with any id in the
// loaded collection. UUIDs make collisions vanishingly rare; the check
// keeps the uniqueness invariant unconditional.
func (r *Repository[T]) freshID(records []T) string {
	for {
		id := uuid.NewString()
		collides := false
		for _, rec := range records {
			if r.desc.ID(rec) == id {
				collides = true
				break
			}
		}
		if !collides {
			return id
		}
	}
}
