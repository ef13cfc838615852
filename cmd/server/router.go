package main

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/lwaller/taskapi/internal/api"
	"github.com/lwaller/taskapi/internal/config"
)

// newRouter builds the chi router that translates net/http requests into the
// dispatcher's platform-neutral shape. Routing decisions belong to the
// dispatcher, so chi carries a single catch-all route plus middleware.
func newRouter(dispatcher *api.Dispatcher, cfg *config.Config, logg *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.HandleFunc("/*", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		requestID := middleware.GetReqID(req.Context())
		if requestID == "" {
			requestID = uuid.New().String()
		}

		resp := dispatcher.Dispatch(req.Context(), api.Request{
			Method:       req.Method,
			Path:         req.URL.Path,
			Body:         string(body),
			RequestID:    requestID,
			FunctionName: cfg.FunctionName,
		})

		for name, value := range resp.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.WriteString(w, resp.Body); err != nil {
			logg.Error("failed to write response body", "error", err, "request_id", requestID)
		}
	})

	return r
}
