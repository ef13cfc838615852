package store

import (
	"errors"
	"fmt"
)

// Common store errors shared across implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrTaskNotFound indicates the requested task does not exist.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
)

// IsNotFound reports whether err is any kind of "not found" store error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
