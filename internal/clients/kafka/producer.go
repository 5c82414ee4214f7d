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

// SchemaVersion is stamped on every produced message so consumers can reject payloads they
// do not understand.
const SchemaVersion = "1"

// ErrEncodeEvent is returned when an event cannot be serialized; nothing is written.
var ErrEncodeEvent = errors.New("failed to encode event")

// Producer writes domain events to one topic, keyed by merchant
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// NewProducer creates a synchronous producer that waits for all in-sync replicas
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 10 * time.Second
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		BatchSize:              100,
		BatchTimeout:           50 * time.Millisecond,
		WriteTimeout:           config.WriteTimeout,
		AllowAutoTopicCreation: false,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage is the envelope shared by produced and consumed events
type EventMessage struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	MerchantID string                 `json:"merchant_id"`
	Data       map[string]interface{} `json:"data"`
	Timestamp  string                 `json:"timestamp"`
}

// Encode builds the Kafka message for an event. Messages are keyed by merchant so one
// merchant's events stay ordered within a partition.
func (e EventMessage) Encode() (kafka.Message, error) {
	eventBytes, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrEncodeEvent, err)
	}
	return kafka.Message{
		Key:   []byte(e.MerchantID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(e.ID)},
			{Key: "event_type", Value: []byte(e.Type)},
			{Key: "merchant_id", Value: []byte(e.MerchantID)},
			{Key: "schema_version", Value: []byte(SchemaVersion)},
		},
	}, nil
}

// PublishEvent publishes one event
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	return p.PublishEvents(ctx, []EventMessage{event})
}

// PublishEvents writes events in one batch. Any unencodable event fails the whole call
// before anything is written.
func (p *Producer) PublishEvents(ctx context.Context, events []EventMessage) error {
	if len(events) == 0 {
		return nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "topic", Value: p.writer.Topic},
		observability.Field{Key: "event_count", Value: len(events)},
	)

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := event.Encode()
		if err != nil {
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "event_id", Value: event.ID}), "failed to encode event", err)
			return err
		}
		messages = append(messages, msg)
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error(ctx, "failed to write events to kafka", err)
		return fmt.Errorf("failed to write events to kafka: %w", err)
	}

	p.logger.Debug(ctx, "published events to kafka")
	return nil
}

// Close flushes pending writes and closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
