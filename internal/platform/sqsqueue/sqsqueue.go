// Package sqsqueue implements the report.Queue interface on Amazon SQS.
// Timeouts, retries, and delivery guarantees are governed by the SDK client's
// own defaults; this wrapper stays a thin translation layer.
package sqsqueue

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/lwaller/taskapi/internal/report"
)

// api is the subset of the SQS client this package uses.
type api interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Client submits messages to SQS queues.
type Client struct {
	sqs api
}

// New creates a Client using the default AWS configuration chain
// (environment, shared config, instance role).
func New(ctx context.Context) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Client{sqs: sqs.NewFromConfig(cfg)}, nil
}

// Submit sends the body to the queue at endpoint, attaching the attributes
// as string-valued message attributes so consumers can filter on them.
func (c *Client) Submit(ctx context.Context, endpoint string, body []byte, attributes map[string]string) error {
	messageAttributes := make(map[string]types.MessageAttributeValue, len(attributes))
	for name, value := range attributes {
		messageAttributes[name] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(value),
		}
	}

	_, err := c.sqs.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:          aws.String(endpoint),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: messageAttributes,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue: %w", err)
	}

	return nil
}

// compile-time interface check
var _ report.Queue = (*Client)(nil)
