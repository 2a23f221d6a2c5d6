package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a query matches no rows.
	// An unknown code and a known code with zero rows are not distinguished.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable wraps failures of the backing store.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// IsNotFound reports whether err means the query matched nothing.
// Callers should use this instead of comparing errors directly so the
// unknown-code case can be split out later without touching them.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StorageError wraps a driver error so that errors.Is(err, ErrStorageUnavailable) holds.
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}

// ConsistencyError describes a violated derived-field invariant on a record.
type ConsistencyError struct {
	Field  string
	Reason string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent %s: %s", e.Field, e.Reason)
}
