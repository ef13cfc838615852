package api

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lwaller/taskapi/internal/config"
)

// Machine-readable error codes carried in error envelopes.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeTaskNotFound     = "TASK_NOT_FOUND"
	CodeMissingID        = "MISSING_ID"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidErrorType = "INVALID_ERROR_TYPE"
)

// Meta is the response metadata block stamped onto every envelope.
type Meta struct {
	Environment string `json:"environment"`
	Stage       string `json:"stage"`
	Timestamp   string `json:"timestamp"`
}

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Meta    Meta `json:"meta"`
}

type errorEnvelope struct {
	Success bool        `json:"success"`
	Error   errorDetail `json:"error"`
}

type errorDetail struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Stage       string `json:"stage"`
	Details     any    `json:"details,omitempty"`
}

// Envelope builds the canonical success/error response wrappers. The status
// code and body are independent; the builder never infers one from the
// other. Exactly one variant is populated per response.
type Envelope struct {
	environment string
	stage       string
	now         func() time.Time
}

// NewEnvelope creates an Envelope bound to the active configuration.
func NewEnvelope(cfg *config.Config) *Envelope {
	return &Envelope{
		environment: cfg.Environment,
		stage:       cfg.Stage,
		now:         time.Now,
	}
}

// Success emits {success: true, data, meta} with the fixed header set.
func (e *Envelope) Success(status int, data any) Response {
	ts := e.timestamp()
	body := successEnvelope{
		Success: true,
		Data:    data,
		Meta: Meta{
			Environment: e.environment,
			Stage:       e.stage,
			Timestamp:   ts,
		},
	}

	return Response{
		StatusCode: status,
		Headers:    e.headers(ts),
		Body:       marshalBody(body),
	}
}

// Error emits {success: false, error: {code, message, ...}} with the fixed
// header set.
func (e *Envelope) Error(status int, code, message string) Response {
	return e.ErrorWithDetails(status, code, message, nil)
}

// ErrorWithDetails is Error with an optional structured details payload,
// such as the list of validation violations.
func (e *Envelope) ErrorWithDetails(status int, code, message string, details any) Response {
	ts := e.timestamp()
	body := errorEnvelope{
		Success: false,
		Error: errorDetail{
			Code:        code,
			Message:     message,
			Timestamp:   ts,
			Environment: e.environment,
			Stage:       e.stage,
			Details:     details,
		},
	}

	return Response{
		StatusCode: status,
		Headers:    e.headers(ts),
		Body:       marshalBody(body),
	}
}

func (e *Envelope) timestamp() string {
	return e.now().UTC().Format(time.RFC3339)
}

// headers returns the fixed header set every response carries: content type,
// permissive CORS, and echoed environment/stage/timestamp.
func (e *Envelope) headers(timestamp string) map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
		"X-Environment":                e.environment,
		"X-API-Stage":                  e.stage,
		"X-Timestamp":                  timestamp,
	}
}

func marshalBody(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Envelope types only hold JSON-safe values, so this indicates a
		// programming error in a data payload.
		slog.Error("failed to encode response envelope", "error", err)
		return `{"success":false,"error":{"code":"INTERNAL_ERROR","message":"Internal server error occurred"}}`
	}
	return string(b)
}
