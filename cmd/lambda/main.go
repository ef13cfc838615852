// Package main implements the AWS Lambda adapter for the task API. It
// translates API Gateway proxy events into the dispatcher's platform-neutral
// request shape and hands the envelope straight back.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/lwaller/taskapi/internal/api"
	"github.com/lwaller/taskapi/internal/config"
	"github.com/lwaller/taskapi/internal/platform/logger"
	"github.com/lwaller/taskapi/internal/platform/memstore"
	"github.com/lwaller/taskapi/internal/platform/sqsqueue"
	"github.com/lwaller/taskapi/internal/report"
)

// handler holds the dependencies built once per Lambda execution
// environment. The task store is volatile and scoped to this instance; a
// durable backend would replace memstore here.
type handler struct {
	dispatcher *api.Dispatcher
}

func (h *handler) handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := h.dispatcher.Dispatch(ctx, api.Request{
		Method:       event.HTTPMethod,
		Path:         event.Path,
		PathParams:   event.PathParameters,
		Body:         event.Body,
		RequestID:    event.RequestContext.RequestID,
		FunctionName: lambdacontext.FunctionName,
	})

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg)

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
	h := &handler{
		dispatcher: api.NewDispatcher(cfg, memstore.New(), reporter, logg),
	}

	lambda.Start(h.handle)
}
