package service

import (
	"errors"
	"fmt"

	"anaesthesia-staffing-service/internal/repository"
)

// ErrStaleCursor is returned when a load-more names a cursor other than the current one
var ErrStaleCursor = errors.New("cursor is no longer current")

// PersistenceError is returned when a write to the record store fails.
// Local state is never changed when one is returned.
type PersistenceError struct {
	Op         string
	Collection string
	ID         string
	Err        error
}

func (e *PersistenceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %v", e.Op, e.Collection, e.ID, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err was caused by a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func persistenceError(op, collection, id string, err error) error {
	return &PersistenceError{Op: op, Collection: collection, ID: id, Err: err}
}
