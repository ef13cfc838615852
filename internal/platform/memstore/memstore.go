// Package memstore provides a volatile in-memory TaskStore. It exists for
// local development and for deployments where a durable backend has not been
// provisioned; tasks do not survive a process restart.
package memstore

import (
	"context"
	"sync"

	"github.com/lwaller/taskapi/internal/domain"
	"github.com/lwaller/taskapi/internal/store"
)

// Store is a mutex-guarded in-memory task collection. The hosting platform
// may serve concurrent requests from one process, so mutating access is
// serialized to keep ID uniqueness and consistent read snapshots.
type Store struct {
	mu    sync.Mutex
	tasks map[string]domain.Task
	order []string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		tasks: make(map[string]domain.Task),
	}
}

// Put inserts the task keyed by its ID.
func (s *Store) Put(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; !exists {
		s.order = append(s.order, task.ID)
	}
	s.tasks[task.ID] = *task

	return nil
}

// ListAll returns a snapshot of every stored task in insertion order. The
// ordering is a convenience, not part of the TaskStore contract.
func (s *Store) ListAll(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		task := s.tasks[id]
		tasks = append(tasks, &task)
	}

	return tasks, nil
}

// Get returns the task with the given ID, or store.ErrTaskNotFound.
func (s *Store) Get(ctx context.Context, id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	return &task, nil
}

// compile-time interface check
var _ store.TaskStore = (*Store)(nil)
