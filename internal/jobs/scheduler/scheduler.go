package scheduler

import (
	"context"
	"fmt"
	"rewards-server/internal/observability"
	"sync"
	"time"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging and metrics
	Name() string
	// Run executes one pass of the job. It must be safe to re-run after a partial pass.
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler runs each registered job on its own ticker. Runs of one job never overlap, and
// every run is bounded by the job's interval.
type Scheduler struct {
	jobs    []Job
	logger  *observability.Logger
	metrics *observability.RewardsMetrics
}

// New creates a new scheduler. metrics may be nil.
func New(logger *observability.Logger, metrics *observability.RewardsMetrics) *Scheduler {
	return &Scheduler{
		jobs:    make([]Job, 0),
		logger:  logger,
		metrics: metrics,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(observability.WithFields(context.Background(),
		observability.Field{Key: "scheduled_job", Value: job.Name()},
		observability.Field{Key: "interval", Value: job.Schedule().String()},
	), "registered scheduled job")
}

// Jobs returns the registered jobs in registration order
func (s *Scheduler) Jobs() []Job {
	return s.jobs
}

// Start runs all jobs until ctx is cancelled, then waits for in-flight runs to return.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(observability.WithFields(ctx, observability.Field{Key: "jobs", Value: len(s.jobs)}), "starting scheduler")

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runJob(ctx, job)
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
	s.logger.Info(ctx, "scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	// Run immediately on startup
	s.RunOnce(jobCtx, job)

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(jobCtx, job)
		}
	}
}

// RunOnce executes one run of job under a timeout of one interval. A panicking job is
// recovered and reported as a failed run.
func (s *Scheduler) RunOnce(ctx context.Context, job Job) (err error) {
	runCtx, cancel := context.WithTimeout(ctx, job.Schedule())
	defer cancel()

	start := time.Now()
	outcome := "success"
	defer func() {
		if r := recover(); r != nil {
			outcome = "panic"
			err = fmt.Errorf("job %s panicked: %v", job.Name(), r)
		}
		duration := time.Since(start)
		s.metrics.ObserveJobRun(job.Name(), outcome, duration)

		logCtx := observability.WithFields(ctx, observability.Field{Key: "duration_ms", Value: duration.Milliseconds()})
		if err != nil {
			s.logger.Error(logCtx, "scheduled job failed", err)
			return
		}
		s.logger.Info(logCtx, "scheduled job completed")
	}()

	if err = job.Run(runCtx); err != nil {
		outcome = "failure"
	}
	return err
}
