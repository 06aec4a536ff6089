package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// OrderPlacedEvent is published after an order and its items are committed.
type OrderPlacedEvent struct {
	EventID    string    `json:"event_id"`
	OrderID    uint      `json:"order_id"`
	CustomerID uint      `json:"customer_id"`
	OrderDate  string    `json:"order_date"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
}

// SQSAPI is the part of *sqs.Client the publisher needs.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// NewSQSClient loads the default AWS config chain.
func NewSQSClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return sqs.NewFromConfig(cfg), nil
}

type sqsPublisher struct {
	client     SQSAPI
	queueURL   string
	maxElapsed time.Duration
}

// NewPublisher returns an SQS publisher for queueURL, or a no-op publisher
// when either argument is empty.
func NewPublisher(client SQSAPI, queueURL string) Publisher {
	if client == nil || queueURL == "" {
		return NoopPublisher{}
	}
	return &sqsPublisher{client: client, queueURL: queueURL, maxElapsed: 2 * time.Second}
}

func (p *sqsPublisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	backOff := backoff.NewExponentialBackOff()
	backOff.MaxElapsedTime = p.maxElapsed
	err = backoff.Retry(func() error {
		_, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
			QueueUrl:    aws.String(p.queueURL),
			MessageBody: aws.String(string(data)),
		})
		if err != nil {
			log.Printf("Failed to send order event %s: %v", event.EventID, err)
		}
		return err
	}, backoff.WithContext(backOff, ctx))
	if err != nil {
		return errors.New("failed to publish order placed event: " + err.Error())
	}

	log.Printf("Order placed event sent with ID: %s", event.EventID)
	return nil
}

type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPlaced(context.Context, OrderPlacedEvent) error { return nil }
