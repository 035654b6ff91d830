package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is checks across the catalog.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRecord indicates one or more field rules were violated.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrPersistence indicates the store rejected a write.
	ErrPersistence = errors.New("persistence failed")
)

// ValidationError carries every violated field rule, in rule order. Callers
// are expected to surface all messages, not just the first.
type ValidationError struct {
	Errors []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// NotFoundError identifies the missing record.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie with id %s not found", e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PersistenceError wraps a failed store write. The in-memory collection is
// still valid for the current session; the caller should warn the user that
// the change may not survive a restart.
type PersistenceError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting key %q: %v", e.Key, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
