package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rewards-server/internal/bootstrap"
	"rewards-server/internal/config"
	"rewards-server/internal/jobs"
	"rewards-server/internal/jobs/scheduler"
	"rewards-server/internal/jobs/workers"
	"rewards-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Cleanup()

	if err := deps.InitializeSettlement(ctx); err != nil {
		log.Fatalf("Failed to initialize settlement: %v", err)
	}

	scheduled := deps.ScheduledJobs()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Without Redis the jobs run on in-process tickers
	if cfg.Redis.Host == "" {
		logger.Warn(ctx, "REDIS_HOST not set, running jobs on the inline scheduler")
		inline := scheduler.New(logger, deps.Metrics)
		for _, job := range scheduled {
			inline.Register(job)
		}
		go func() {
			<-sigChan
			cancel()
		}()
		_ = inline.Start(ctx)
		logger.Info(ctx, "Worker stopped")
		return
	}

	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Host}

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 3, // one run per scheduled job
			Queues: map[string]int{
				jobs.QueueHigh: 5,
				jobs.QueueLow:  1,
			},
			// Error handler
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
			Logger: &asynqLogger{logger: logger},
		},
	)

	// Create task handler (mux) and periodic schedule
	mux := asynq.NewServeMux()
	periodic := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Logger: &asynqLogger{logger: logger},
		},
	)

	jobWorker := workers.NewJobWorker(logger, deps.Metrics, scheduled...)
	if err := jobWorker.Register(mux, periodic); err != nil {
		log.Fatalf("Failed to register jobs: %v", err)
	}

	// Start the scheduler
	if err := periodic.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer periodic.Shutdown()

	// Start the server in a goroutine
	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Host))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	// Graceful shutdown
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
