package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lwaller/taskapi/internal/config"
	"github.com/lwaller/taskapi/internal/report"
	"github.com/lwaller/taskapi/internal/store"
)

// routeKey identifies a route by exact method and path.
type routeKey struct {
	method string
	path   string
}

// Dispatcher maps (method, path) to a handler and arms the top-level failure
// boundary around every invocation. Expected outcomes pass through
// untouched; a returned error or a panic is forwarded to the error reporter
// (best-effort) and converted into a fixed 500 envelope. The original
// failure never reaches the caller.
type Dispatcher struct {
	envelope *Envelope
	reporter ErrorReporter
	logger   *slog.Logger

	routes map[routeKey]HandlerFunc

	// getTask matches GET /tasks/{id} by path prefix, the one route that
	// cannot be an exact match.
	getTask HandlerFunc
}

// NewDispatcher wires the route table against the given collaborators.
func NewDispatcher(cfg *config.Config, tasks store.TaskStore, reporter ErrorReporter, logger *slog.Logger) *Dispatcher {
	envelope := NewEnvelope(cfg)
	taskHandler := NewTaskHandler(tasks, envelope, cfg, logger)
	errorTestHandler := NewErrorTestHandler(envelope, reporter, cfg.DLQURL, logger)

	return &Dispatcher{
		envelope: envelope,
		reporter: reporter,
		logger:   logger,
		routes: map[routeKey]HandlerFunc{
			{http.MethodGet, "/health"}:      taskHandler.Health,
			{http.MethodGet, "/tasks"}:       taskHandler.ListTasks,
			{http.MethodPost, "/tasks"}:      taskHandler.CreateTask,
			{http.MethodPost, "/test/error"}: errorTestHandler.Handle,
		},
		getTask: taskHandler.GetTask,
	}
}

// Dispatch routes the request to exactly one handler and returns its
// response. Unknown routes get a 404 envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Response {
	d.logger.Info("handling request",
		"method", req.Method,
		"path", req.Path,
		"request_id", req.RequestID)

	handler, ok := d.match(req)
	if !ok {
		return d.envelope.Error(http.StatusNotFound, CodeNotFound, "Endpoint not found")
	}

	resp, err := d.invoke(ctx, handler, req)
	if err != nil {
		d.reporter.Report(ctx, err, snapshotOf(req), report.CategoryUnhandledException)
		d.logger.Error("unhandled error in request handler",
			"error", err,
			"method", req.Method,
			"path", req.Path,
			"request_id", req.RequestID)
		return d.envelope.Error(http.StatusInternalServerError,
			CodeInternalError, "Internal server error occurred")
	}

	return resp
}

func (d *Dispatcher) match(req Request) (HandlerFunc, bool) {
	if handler, ok := d.routes[routeKey{req.Method, req.Path}]; ok {
		return handler, true
	}
	if req.Method == http.MethodGet && strings.HasPrefix(req.Path, "/tasks/") {
		return d.getTask, true
	}
	return nil, false
}

// invoke runs the handler with panic recovery. Recovery exists only for
// truly unanticipated failures; handlers return expected errors as explicit
// Response outcomes.
func (d *Dispatcher) invoke(ctx context.Context, handler HandlerFunc, req Request) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	return handler(ctx, req)
}
