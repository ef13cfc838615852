// Package store defines the storage interfaces the API depends on. Concrete
// implementations live under internal/platform; the reference backend is a
// volatile in-process map, with durable backends expected to satisfy the same
// interface.
package store

import (
	"context"

	"github.com/lwaller/taskapi/internal/domain"
)

// TaskStore is the interface for task persistence.
type TaskStore interface {
	// Put inserts a task keyed by its ID. IDs are freshly generated per
	// task, so overwriting an existing entry is never expected.
	Put(ctx context.Context, task *domain.Task) error

	// ListAll returns every stored task. Ordering is not guaranteed by the
	// contract, though implementations may preserve insertion order.
	ListAll(ctx context.Context) ([]*domain.Task, error)

	// Get returns the task with the given ID, or ErrTaskNotFound.
	Get(ctx context.Context, id string) (*domain.Task, error)
}
