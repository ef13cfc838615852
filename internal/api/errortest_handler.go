package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"

	"github.com/lwaller/taskapi/internal/report"
)

// Failure injection constants for the "random" error type. They are fixed at
// compile time on purpose: retry/DLQ drills need a known rate, not a knob
// someone can quietly change in production.
const (
	randomFailureProbability = 0.7
	randomSuccessRate        = "30%"
)

// errorTestRequest is the expected body for POST /test/error. ErrorType is a
// pointer because an absent key defaults to the exception drill while an
// explicit empty string is an unknown error type.
type errorTestRequest struct {
	ErrorType *string `json:"errorType"`
}

// ErrorTestHandler serves the diagnostic trigger endpoint used to exercise
// the failure boundary and the dead-letter pipeline on demand.
type ErrorTestHandler struct {
	envelope *Envelope
	reporter ErrorReporter
	dlqURL   string
	logger   *slog.Logger

	// random is the uniform [0,1) source for the "random" error type,
	// injectable so tests can force both branches.
	random func() float64
}

// NewErrorTestHandler creates an ErrorTestHandler.
func NewErrorTestHandler(envelope *Envelope, reporter ErrorReporter, dlqURL string, logger *slog.Logger) *ErrorTestHandler {
	return &ErrorTestHandler{
		envelope: envelope,
		reporter: reporter,
		dlqURL:   dlqURL,
		logger:   logger,
		random:   rand.Float64,
	}
}

// Handle handles POST /test/error. The errorType field selects the drill:
//
//   - "exception" raises an internal error, exercising the dispatcher's
//     failure boundary and, transitively, the error reporter.
//   - "dlq" submits a synthetic report directly and returns 200.
//   - "random" fails with probability randomFailureProbability, otherwise
//     returns 200.
//
// A missing errorType defaults to "exception"; anything else is a 400.
func (h *ErrorTestHandler) Handle(ctx context.Context, req Request) (Response, error) {
	errorType := "exception"
	if strings.TrimSpace(req.Body) != "" {
		var input errorTestRequest
		if err := json.Unmarshal([]byte(req.Body), &input); err != nil {
			return h.envelope.Error(http.StatusBadRequest,
				CodeInvalidJSON, "Request body must be valid JSON"), nil
		}
		if input.ErrorType != nil {
			errorType = *input.ErrorType
		}
	}

	switch errorType {
	case "exception":
		return Response{}, errors.New("test exception for DLQ verification")

	case "dlq":
		h.logger.Info("manual DLQ drill triggered", "request_id", req.RequestID)
		h.reporter.Report(ctx, errors.New("manual DLQ test"), snapshotOf(req), report.CategoryManualDLQTest)
		return h.envelope.Success(http.StatusOK, map[string]any{
			"message": "Test message sent to DLQ",
			"dlq_url": h.dlqURL,
		}), nil

	case "random":
		if h.random() < randomFailureProbability {
			return Response{}, errors.New("random test failure")
		}
		return h.envelope.Success(http.StatusOK, map[string]any{
			"message":      "Random test passed",
			"success_rate": randomSuccessRate,
		}), nil

	default:
		return h.envelope.Error(http.StatusBadRequest,
			CodeInvalidErrorType, "errorType must be: exception, dlq, or random"), nil
	}
}
