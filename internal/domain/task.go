package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Priority represents the urgency assigned to a task.
type Priority string

// Possible task priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status represents the lifecycle state of a task. Tasks are immutable after
// creation, so every task stays pending; the enum exists because durable
// backends track transitions this core does not implement.
type Status string

// StatusPending is the status assigned to every task at creation.
const StatusPending Status = "pending"

// Field length bounds for task creation.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// Common validation errors for Task.
var (
	ErrEmptyTaskID        = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle     = errors.New("task title cannot be empty")
	ErrTitleTooLong       = errors.New("task title exceeds maximum length")
	ErrDescriptionTooLong = errors.New("task description exceeds maximum length")
	ErrInvalidPriority    = errors.New("invalid task priority")
	ErrInvalidStatus      = errors.New("invalid task status")
)

// Task is a unit of work tracked by the API. Instances are created through
// NewTask and never mutated afterwards; UpdatedAt equals CreatedAt because no
// update operation exists.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Environment string    `json:"environment"`
}

// NewTask creates a Task with a fresh unique ID, pending status, and
// creation timestamps in UTC. The environment tag is copied from the
// process-wide configuration and is immutable per task.
// Returns an error if validation fails.
func NewTask(title, description string, priority Priority, environment string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Environment: environment,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the Task invariants. Returns the first violated one.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrEmptyTaskID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}

	if utf8.RuneCountInString(t.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if !IsValidPriority(t.Priority) {
		return ErrInvalidPriority
	}

	if t.Status != StatusPending {
		return ErrInvalidStatus
	}

	return nil
}

// IsValidPriority reports whether the given priority is one of the three
// recognized values.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
