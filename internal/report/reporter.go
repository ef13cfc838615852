// Package report forwards failure details to an external dead-letter queue
// for offline inspection. Reporting is strictly best-effort infrastructure:
// a missing or unreachable queue never affects the response a caller gets.
package report

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lwaller/taskapi/internal/redact"
)

// Failure categories attached to forwarded reports. They are queryable as
// message attributes on the queue side.
const (
	CategoryUnhandledException = "unhandled_exception"
	CategoryManualDLQTest      = "manual_dlq_test"
)

// Message attribute names used when submitting to the queue.
const (
	AttrErrorType   = "ErrorType"
	AttrEnvironment = "Environment"
)

// Queue is the narrow contract for the external dead-letter queue. Delivery
// guarantees and ordering are the queue's responsibility, not this package's.
type Queue interface {
	Submit(ctx context.Context, endpoint string, body []byte, attributes map[string]string) error
}

// Snapshot captures the request that triggered a failure. The body is
// redacted before it leaves the process.
type Snapshot struct {
	Method       string
	Path         string
	Body         string
	RequestID    string
	FunctionName string
}

// message is the fixed wire shape of a forwarded error report. Field names
// follow the queue consumer's expectations.
type message struct {
	ErrorType    string        `json:"errorType"`
	ErrorMessage string        `json:"errorMessage"`
	Timestamp    string        `json:"timestamp"`
	Environment  string        `json:"environment"`
	FunctionName string        `json:"functionName"`
	RequestID    string        `json:"requestId"`
	Event        eventSnapshot `json:"event"`
}

type eventSnapshot struct {
	HTTPMethod string `json:"httpMethod"`
	Path       string `json:"path"`
	Body       string `json:"body"`
}

// Reporter serializes failures and submits them to the configured queue.
type Reporter struct {
	queue       Queue
	endpoint    string
	environment string
	logger      *slog.Logger
	now         func() time.Time
}

// New creates a Reporter. An empty endpoint disables forwarding; Report then
// logs a warning and returns, and the queue is never touched (it may be nil).
func New(queue Queue, endpoint, environment string, logger *slog.Logger) *Reporter {
	return &Reporter{
		queue:       queue,
		endpoint:    endpoint,
		environment: environment,
		logger:      logger,
		now:         time.Now,
	}
}

// Enabled reports whether a dead-letter endpoint is configured.
func (r *Reporter) Enabled() bool {
	return r.endpoint != ""
}

// Report serializes the failure and submits it to the queue, tagging the
// submission with the category and environment. It never returns an error
// and never panics: submission failures are logged and swallowed so the
// caller's response path is unaffected.
func (r *Reporter) Report(ctx context.Context, cause error, snap Snapshot, category string) {
	if r.endpoint == "" {
		r.logger.Warn("dead-letter queue not configured, dropping error report",
			"category", category)
		return
	}

	msg := message{
		ErrorType:    category,
		ErrorMessage: redact.Error(cause),
		Timestamp:    r.now().UTC().Format(time.RFC3339),
		Environment:  r.environment,
		FunctionName: orUnknown(snap.FunctionName),
		RequestID:    orUnknown(snap.RequestID),
		Event: eventSnapshot{
			HTTPMethod: snap.Method,
			Path:       snap.Path,
			Body:       redact.String(snap.Body),
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		r.logger.Error("failed to serialize error report", "error", err, "category", category)
		return
	}

	attributes := map[string]string{
		AttrErrorType:   category,
		AttrEnvironment: r.environment,
	}

	if err := r.queue.Submit(ctx, r.endpoint, body, attributes); err != nil {
		r.logger.Error("failed to submit error report to dead-letter queue",
			"error", err,
			"category", category)
		return
	}

	r.logger.Info("error report sent to dead-letter queue",
		"category", category,
		"request_id", msg.RequestID)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
