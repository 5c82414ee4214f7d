package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"rewards-server/internal/observability"
	"time"

	"github.com/segmentio/kafka-go"
)

// ErrPermanent marks a handler failure that retrying cannot fix.
var ErrPermanent = errors.New("permanent event failure")

// Handler processes one decoded event.
type Handler func(context.Context, EventMessage) error

// Consumer handles consuming events from Kafka
type Consumer struct {
	reader      *kafka.Reader
	logger      *observability.Logger
	maxAttempts int
	backoff     time.Duration
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	MinBytes    int
	MaxBytes    int
	MaxAttempts int
	Backoff     time.Duration
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 10e3 // 10KB
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6 // 10MB
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	if config.Backoff <= 0 {
		config.Backoff = 500 * time.Millisecond
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       config.MinBytes,
		MaxBytes:       config.MaxBytes,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: 0, // commit explicitly after handling
	})

	return &Consumer{
		reader:      reader,
		logger:      logger,
		maxAttempts: config.MaxAttempts,
		backoff:     config.Backoff,
	}
}

// ConsumeEvents reads events until ctx is cancelled. Each message is retried with
// linear backoff before its offset is committed, so one bad event cannot stall the partition.
func (c *Consumer) ConsumeEvents(ctx context.Context, handler Handler) error {
	c.logger.Info(ctx, "Starting Kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info(ctx, "Stopping Kafka consumer")
				return ctx.Err()
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			continue
		}

		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "partition", Value: msg.Partition},
			observability.Field{Key: "offset", Value: msg.Offset},
		)

		event, err := Decode(msg)
		if err != nil {
			c.logger.Error(msgCtx, "failed to decode event, skipping", err)
			c.commit(msgCtx, msg)
			continue
		}

		msgCtx = observability.WithFields(msgCtx,
			observability.Field{Key: "event_type", Value: event.Type},
			observability.Field{Key: "event_id", Value: event.ID},
			observability.Field{Key: "merchant_id", Value: event.MerchantID},
		)

		if err := c.handleWithRetry(msgCtx, handler, event); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error(msgCtx, "giving up on event", err)
		}
		c.commit(msgCtx, msg)
	}
}

func (c *Consumer) handleWithRetry(ctx context.Context, handler Handler, event EventMessage) error {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err = handler(ctx, event); err == nil {
			return nil
		}
		if errors.Is(err, ErrPermanent) {
			return err
		}

		c.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "attempt", Value: attempt},
			observability.Field{Key: "error", Value: err.Error()},
		), "event handler failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * c.backoff):
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", c.maxAttempts, err)
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error(ctx, "failed to commit message", err)
	}
}

// ErrUnsupportedSchema is returned for messages stamped with a schema version this build
// does not understand.
var ErrUnsupportedSchema = errors.New("unsupported event schema version")

// Decode parses a consumed message. Messages without a schema_version header are accepted as
// the current version.
func Decode(msg kafka.Message) (EventMessage, error) {
	for _, header := range msg.Headers {
		if header.Key == "schema_version" && string(header.Value) != SchemaVersion {
			return EventMessage{}, fmt.Errorf("%w: %s", ErrUnsupportedSchema, header.Value)
		}
	}

	var event EventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return EventMessage{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return event, nil
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
