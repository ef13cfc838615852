package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lwaller/taskapi/internal/config"
	"github.com/lwaller/taskapi/internal/domain"
	"github.com/lwaller/taskapi/internal/store"
)

// version reported by the health endpoint.
const apiVersion = "3.0.0"

// createTaskRequest is the expected body for POST /tasks. Validation happens
// against the raw strings, so no validate tags here. Priority is a pointer
// because an absent key defaults to medium while an explicit empty string is
// a validation error.
type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    *string `json:"priority"`
}

// TaskHandler serves the health probe and the task CRUD-lite routes.
type TaskHandler struct {
	tasks    store.TaskStore
	envelope *Envelope
	cfg      *config.Config
	logger   *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(tasks store.TaskStore, envelope *Envelope, cfg *config.Config, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:    tasks,
		envelope: envelope,
		cfg:      cfg,
		logger:   logger,
	}
}

// Health handles GET /health. The payload exposes the deployment identity
// and which optional features are active.
func (h *TaskHandler) Health(ctx context.Context, req Request) (Response, error) {
	dlq := "disabled"
	if h.cfg.DLQURL != "" {
		dlq = "enabled"
	}

	return h.envelope.Success(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": h.cfg.Environment,
		"stage":       h.cfg.Stage,
		"version":     apiVersion,
		"features": map[string]string{
			"dlq":            dlq,
			"error_handling": "enabled",
		},
	}), nil
}

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(ctx context.Context, req Request) (Response, error) {
	tasks, err := h.tasks.ListAll(ctx)
	if err != nil {
		return Response{}, err
	}

	return h.envelope.Success(http.StatusOK, map[string]any{
		"tasks": tasks,
		"count": len(tasks),
	}), nil
}

// CreateTask handles POST /tasks. Input violations are collected in rule
// order and returned together; a valid request stores a fresh task and
// returns it with 201.
func (h *TaskHandler) CreateTask(ctx context.Context, req Request) (Response, error) {
	var input createTaskRequest
	if resp, ok := h.decodeBody(req.Body, &input); !ok {
		return resp, nil
	}

	priority := string(domain.PriorityMedium)
	if input.Priority != nil {
		priority = *input.Priority
	}

	if violations := validateTaskInput(input.Title, input.Description, priority); len(violations) > 0 {
		return h.envelope.ErrorWithDetails(http.StatusBadRequest,
			CodeValidationError, "Validation failed",
			map[string]any{"errors": violations}), nil
	}

	task, err := domain.NewTask(
		strings.TrimSpace(input.Title),
		strings.TrimSpace(input.Description),
		domain.Priority(strings.ToLower(strings.TrimSpace(priority))),
		h.cfg.Environment,
	)
	if err != nil {
		return Response{}, err
	}

	if err := h.tasks.Put(ctx, task); err != nil {
		return Response{}, err
	}

	h.logger.Info("task created", "task_id", task.ID, "priority", task.Priority)

	return h.envelope.Success(http.StatusCreated, map[string]any{
		"message": "Task created successfully",
		"task":    task,
	}), nil
}

// GetTask handles GET /tasks/{id}. The ID comes from the platform-supplied
// path parameters when present, otherwise from the path itself.
func (h *TaskHandler) GetTask(ctx context.Context, req Request) (Response, error) {
	id := req.PathParams["id"]
	if id == "" {
		id = strings.TrimPrefix(req.Path, "/tasks/")
	}
	if id == "" {
		return h.envelope.Error(http.StatusBadRequest, CodeMissingID, "Task ID is required"), nil
	}

	task, err := h.tasks.Get(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return h.envelope.Error(http.StatusNotFound, CodeTaskNotFound, "Task not found"), nil
		}
		return Response{}, err
	}

	return h.envelope.Success(http.StatusOK, map[string]any{
		"task": task,
	}), nil
}

// decodeBody unmarshals a request body into v. An empty body decodes as an
// empty object, matching the hosting platforms that omit it entirely. On
// malformed JSON it returns the 400 INVALID_JSON response and false.
func (h *TaskHandler) decodeBody(body string, v any) (Response, bool) {
	if strings.TrimSpace(body) == "" {
		return Response{}, true
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return h.envelope.Error(http.StatusBadRequest,
			CodeInvalidJSON, "Request body must be valid JSON"), false
	}
	return Response{}, true
}
