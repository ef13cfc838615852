// Package main implements the standalone HTTP server for the task API,
// used for local development and non-Lambda deployments. It wires the same
// dispatcher the Lambda adapter uses behind a chi router.
package main

import (
	"context"
	"log"

	"github.com/lwaller/taskapi/internal/api"
	"github.com/lwaller/taskapi/internal/config"
	"github.com/lwaller/taskapi/internal/platform/logger"
	"github.com/lwaller/taskapi/internal/platform/memstore"
	"github.com/lwaller/taskapi/internal/platform/sqsqueue"
	"github.com/lwaller/taskapi/internal/report"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg)
	logg.Info("configuration loaded",
		"environment", cfg.Environment,
		"stage", cfg.Stage,
		"log_level", cfg.LogLevel,
		"dlq_configured", cfg.DLQURL != "")

	// Error forwarding is optional infrastructure. If the SQS client cannot
	// be built, run with reporting disabled instead of refusing to start.
	var queue report.Queue
	dlqURL := cfg.DLQURL
	if dlqURL != "" {
		client, err := sqsqueue.New(ctx)
		if err != nil {
			logg.Error("failed to initialize SQS client, error forwarding disabled", "error", err)
			dlqURL = ""
		} else {
			queue = client
		}
	}

	reporter := report.New(queue, dlqURL, cfg.Environment, logg)
	dispatcher := api.NewDispatcher(cfg, memstore.New(), reporter, logg)

	if err := runServer(ctx, cfg, newRouter(dispatcher, cfg, logg), logg); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
