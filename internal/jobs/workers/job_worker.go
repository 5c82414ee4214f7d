package workers

import (
	"context"
	"fmt"

	"rewards-server/internal/jobs"
	"rewards-server/internal/jobs/scheduler"
	"rewards-server/internal/observability"

	"github.com/hibiken/asynq"
)

// JobWorker runs scheduled jobs when their periodic asynq tasks are delivered
type JobWorker struct {
	jobs   map[string]scheduler.Job
	runner *scheduler.Scheduler
	logger *observability.Logger
}

// NewJobWorker creates a worker for the given jobs keyed by task type. Runs go through the
// scheduler's RunOnce so they share its timeout, panic recovery and metrics.
func NewJobWorker(logger *observability.Logger, metrics *observability.RewardsMetrics, scheduled ...scheduler.Job) *JobWorker {
	byType := make(map[string]scheduler.Job, len(scheduled))
	for _, job := range scheduled {
		if taskType, ok := jobs.TaskTypes[job.Name()]; ok {
			byType[taskType] = job
		}
	}
	return &JobWorker{
		jobs:   byType,
		runner: scheduler.New(logger, metrics),
		logger: logger,
	}
}

// Register adds a handler and a periodic schedule for every known job
func (w *JobWorker) Register(mux *asynq.ServeMux, sched *asynq.Scheduler) error {
	for taskType, job := range w.jobs {
		mux.HandleFunc(taskType, w.ProcessTask)
		spec := fmt.Sprintf("@every %s", job.Schedule())
		if _, err := sched.Register(spec, jobs.NewPeriodicTask(taskType, job.Schedule())); err != nil {
			return fmt.Errorf("failed to register %s schedule: %w", job.Name(), err)
		}
		w.logger.Info(observability.WithFields(context.Background(),
			observability.Field{Key: "task_type", Value: taskType},
			observability.Field{Key: "schedule", Value: spec},
		), "registered periodic task")
	}
	return nil
}

// ProcessTask runs the job bound to the task type
func (w *JobWorker) ProcessTask(ctx context.Context, task *asynq.Task) error {
	job, ok := w.jobs[task.Type()]
	if !ok {
		return fmt.Errorf("no job registered for task %s: %w", task.Type(), asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "scheduled_job", Value: job.Name()},
		observability.Field{Key: "task_type", Value: task.Type()},
	)
	return w.runner.RunOnce(ctx, job)
}
