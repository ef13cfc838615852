package api

import (
	"context"

	"github.com/lwaller/taskapi/internal/report"
)

// Request is an HTTP-shaped inbound event, decoupled from any particular
// hosting platform. Adapters translate their native event type into this.
type Request struct {
	Method string
	Path   string

	// PathParams carries parameters already extracted by the hosting
	// platform (API Gateway path parameters). When absent, the dispatcher
	// falls back to extracting them from the path itself.
	PathParams map[string]string

	// Body is the raw request body, expected to be JSON or empty.
	Body string

	// RequestID identifies this invocation for error-report correlation.
	RequestID string

	// FunctionName identifies the deployment handling the request.
	FunctionName string
}

// Response is the outcome handed back to the hosting adapter: a status code,
// a fixed header set, and a serialized JSON body.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// HandlerFunc processes one request. Expected failures (validation, unknown
// ids, malformed JSON) are returned as explicit Responses; a non-nil error
// means an unanticipated failure and is handled by the dispatcher's failure
// boundary.
type HandlerFunc func(ctx context.Context, req Request) (Response, error)

// ErrorReporter forwards failure details to the dead-letter pipeline.
// Implementations must be best-effort: they never return and never panic.
type ErrorReporter interface {
	Report(ctx context.Context, cause error, snap report.Snapshot, category string)
}

func snapshotOf(req Request) report.Snapshot {
	return report.Snapshot{
		Method:       req.Method,
		Path:         req.Path,
		Body:         req.Body,
		RequestID:    req.RequestID,
		FunctionName: req.FunctionName,
	}
}
