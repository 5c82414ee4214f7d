package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rewards-server/internal/bootstrap"
	"rewards-server/internal/clients/kafka"
	"rewards-server/internal/config"
	"rewards-server/internal/events/consumers"
	"rewards-server/internal/observability"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting Kafka interaction worker...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("KAFKA_BROKERS is required for the interaction worker")
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Cleanup()

	// Initialize Kafka consumer
	kafkaConsumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.InteractionsTopic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)
	defer kafkaConsumer.Close()

	interactionConsumer := consumers.NewInteractionConsumer(kafkaConsumer, deps.RewardsProcessor, logger)

	logger.Info(ctx, fmt.Sprintf(`Kafka interaction worker configuration:
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		cfg.Kafka.Brokers, cfg.Kafka.InteractionsTopic, cfg.Kafka.ConsumerGroup))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := interactionConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "Interaction consumer error", err)
			cancel()
		}
	}()

	// Wait for shutdown signal or consumer failure
	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping consumer...")
		cancel()
	case <-ctx.Done():
	}

	<-done
	logger.Info(ctx, "Kafka interaction worker stopped")
}
