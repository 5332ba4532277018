package model

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed or disallowed field value. It is
// recoverable: the caller can correct the input and retry.
type ValidationError struct {
	Entity string // "user", "team", "task"
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Entity, e.Field, e.Reason)
}

// NotFoundError reports that a referenced id does not exist in its
// collection.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// IntegrityError reports an operation that would leave a dangling
// cross-entity reference, such as deleting a user who is still a team
// member or removing a member who is still assigned to a task.
type IntegrityError struct {
	Entity string
	ID     string
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Entity, e.ID, e.Reason)
}

// IsValidation returns true if err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound returns true if err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsIntegrity returns true if err is (or wraps) an IntegrityError.
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
