package api

import (
	"context"
	"math/rand"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwaller/taskapi/internal/report"
)

func newErrorTestHandler(dlqURL string) (*ErrorTestHandler, *fakeReporter) {
	reporter := &fakeReporter{}
	h := NewErrorTestHandler(testEnvelope(), reporter, dlqURL, discardLogger())
	return h, reporter
}

func errorTestRequestFor(body string) Request {
	return Request{
		Method: http.MethodPost,
		Path:   "/test/error",
		Body:   body,
	}
}

func TestErrorTestExceptionReturnsError(t *testing.T) {
	h, reporter := newErrorTestHandler("https://sqs.example.com/dlq")

	_, err := h.Handle(context.Background(), errorTestRequestFor(`{"errorType":"exception"}`))

	require.Error(t, err, "the exception drill must reach the dispatcher's failure boundary")
	assert.Empty(t, reporter.calls, "reporting is the boundary's job, not the handler's")
}

func TestErrorTestDefaultsToException(t *testing.T) {
	h, _ := newErrorTestHandler("")

	// Only an absent errorType key defaults; an explicit empty string is an
	// unknown type and is covered by TestErrorTestInvalidType.
	for _, body := range []string{"", "{}", `{"note":"no errorType key"}`} {
		_, err := h.Handle(context.Background(), errorTestRequestFor(body))
		assert.Error(t, err, "body %q should default to the exception drill", body)
	}
}

func TestErrorTestDLQ(t *testing.T) {
	h, reporter := newErrorTestHandler("https://sqs.example.com/dlq")

	req := errorTestRequestFor(`{"errorType":"dlq"}`)
	req.RequestID = "req-42"

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Body, "Test message sent to DLQ")
	assert.Contains(t, resp.Body, "https://sqs.example.com/dlq")

	require.Len(t, reporter.calls, 1)
	call := reporter.calls[0]
	assert.Equal(t, report.CategoryManualDLQTest, call.category)
	assert.Equal(t, "req-42", call.snap.RequestID)
	assert.ErrorContains(t, call.cause, "manual DLQ test")
}

func TestErrorTestRandomBranches(t *testing.T) {
	h, reporter := newErrorTestHandler("")

	t.Run("forced failure", func(t *testing.T) {
		h.random = func() float64 { return randomFailureProbability - 0.01 }
		_, err := h.Handle(context.Background(), errorTestRequestFor(`{"errorType":"random"}`))
		assert.Error(t, err)
	})

	t.Run("forced success", func(t *testing.T) {
		h.random = func() float64 { return randomFailureProbability }
		resp, err := h.Handle(context.Background(), errorTestRequestFor(`{"errorType":"random"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Body, "Random test passed")
		assert.Contains(t, resp.Body, randomSuccessRate)
	})

	assert.Empty(t, reporter.calls)
}

func TestErrorTestRandomFailureRate(t *testing.T) {
	h, _ := newErrorTestHandler("")

	// Seeded source so the trial is deterministic.
	rng := rand.New(rand.NewSource(7))
	h.random = rng.Float64

	const trials = 1000
	failures := 0
	for i := 0; i < trials; i++ {
		if _, err := h.Handle(context.Background(), errorTestRequestFor(`{"errorType":"random"}`)); err != nil {
			failures++
		}
	}

	rate := float64(failures) / trials
	assert.InDelta(t, randomFailureProbability, rate, 0.05,
		"failure rate over %d trials should be roughly %.0f%%", trials, randomFailureProbability*100)
}

func TestErrorTestInvalidType(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown type", body: `{"errorType":"meltdown"}`},
		{name: "explicit empty type", body: `{"errorType":""}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, reporter := newErrorTestHandler("")

			resp, err := h.Handle(context.Background(), errorTestRequestFor(tc.body))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			e := decodeErrorBody(t, resp.Body)
			assert.Equal(t, CodeInvalidErrorType, e.Error.Code)
			assert.Equal(t, "errorType must be: exception, dlq, or random", e.Error.Message)
			assert.Empty(t, reporter.calls)
		})
	}
}

func TestErrorTestMalformedJSON(t *testing.T) {
	h, _ := newErrorTestHandler("")

	resp, err := h.Handle(context.Background(), errorTestRequestFor(`{"errorType"`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, CodeInvalidJSON, decodeErrorBody(t, resp.Body).Error.Code)
}
