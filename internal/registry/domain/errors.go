package domain

import "fmt"

// NotFoundError indicates that no registration exists with the requested ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registration %s not found", e.ID)
}

// ValidationError indicates that a create request is missing a field required
// by its category, or carries an invalid value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

// AllocationError indicates that a counter's atomic read-modify-write could
// not complete. The enclosing create fails with no record persisted; retrying
// the whole create performs a fresh allocation.
type AllocationError struct {
	Key string
	Err error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocating next value for counter %s: %v", e.Key, e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// StoreError indicates that the underlying persistence layer could not be
// reached or failed mid-operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
