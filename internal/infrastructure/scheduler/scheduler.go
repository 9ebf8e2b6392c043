// Package scheduler runs periodic per-organization maintenance jobs on a
// fixed worker pool.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/propertyhub/backend/internal/infrastructure/config"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const jobQueueSize = 256

// Scheduler executes submitted jobs with bounded concurrency, a per-job
// timeout and delayed retries.
type Scheduler struct {
	config   config.SchedulerConfig
	executor JobExecutor
	logger   *zap.Logger
	jobsRun  *telemetry.Counter

	jobs      chan *Job
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	retries   map[*time.Timer]struct{}
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg config.SchedulerConfig, executor JobExecutor, logger *zap.Logger) (*Scheduler, error) {
	if executor == nil {
		return nil, fmt.Errorf("%w: executor is required", ErrInvalidConfig)
	}
	if cfg.MaxConcurrentJobs <= 0 {
		return nil, fmt.Errorf("%w: max concurrent jobs must be positive", ErrInvalidConfig)
	}
	if cfg.JobTimeout <= 0 {
		return nil, fmt.Errorf("%w: job timeout must be positive", ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		config:   cfg,
		executor: executor,
		logger:   logger.Named("scheduler"),
		jobs:     make(chan *Job, jobQueueSize),
		retries:  make(map[*time.Timer]struct{}),
	}, nil
}

// WithMetrics records job outcomes on meter as scheduler_jobs_total
func (s *Scheduler) WithMetrics(meter metric.Meter) error {
	c, err := telemetry.NewCounter(meter, "scheduler_jobs_total", "Scheduler job executions by outcome", "{job}")
	if err != nil {
		return err
	}
	s.jobsRun = c
	return nil
}

// Start starts the worker pool
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}
	s.isRunning = true

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.config.MaxConcurrentJobs; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}

	s.logger.Info("Scheduler started",
		zap.Int("workers", s.config.MaxConcurrentJobs),
		zap.Duration("job_timeout", s.config.JobTimeout),
		zap.Int("retry_attempts", s.config.RetryAttempts),
	)
	return nil
}

// Stop cancels running jobs and waits for workers until ctx expires
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	for t := range s.retries {
		t.Stop()
	}
	s.retries = make(map[*time.Timer]struct{})
	close(s.jobs)
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out")
		return ctx.Err()
	}
}

// IsRunning reports whether the worker pool accepts jobs
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// SubmitJob queues a job without blocking
func (s *Scheduler) SubmitJob(job *Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return ErrSchedulerNotRunning
	}

	select {
	case s.jobs <- job:
		s.logger.Debug("Job submitted",
			zap.String("job_id", job.ID.String()),
			zap.String("job_type", string(job.Type)),
			zap.String("org_id", job.OrgID.String()),
		)
		return nil
	default:
		return ErrJobQueueFull
	}
}

func (s *Scheduler) worker(ctx context.Context, workerID int) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-s.jobs:
			if !ok {
				return
			}
			s.processJob(ctx, job, workerID)
		}
	}
}

func (s *Scheduler) processJob(ctx context.Context, job *Job, workerID int) {
	job.Start()
	fields := []zap.Field{
		zap.Int("worker_id", workerID),
		zap.String("job_id", job.ID.String()),
		zap.String("job_type", string(job.Type)),
		zap.String("org_id", job.OrgID.String()),
	}
	s.logger.Debug("Processing job", fields...)

	var err error
	labels := map[string]string{"job": string(job.Type)}
	telemetry.WithLabels(ctx, labels, func(ctx context.Context) {
		jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
		defer cancel()

		jobCtx, span := telemetry.StartSpan(jobCtx, "scheduler."+string(job.Type),
			telemetry.AttrJob.String(string(job.Type)),
			telemetry.AttrOrgID.String(job.OrgID.String()),
			attribute.Int("retry_count", job.RetryCount),
		)
		err = s.executor.Execute(jobCtx, job)
		telemetry.EndSpan(span, err)
	})

	if err == nil {
		job.Complete()
		s.record(ctx, job, "success")
		s.logger.Debug("Job completed", fields...)
		return
	}

	job.Fail(err.Error())
	s.record(ctx, job, "failed")
	s.logger.Error("Job failed", append(fields, zap.Error(err))...)

	if job.ShouldRetry() && ctx.Err() == nil {
		job.ScheduleRetry(s.config.RetryDelay)
		s.logger.Info("Job scheduled for retry",
			zap.String("job_id", job.ID.String()),
			zap.Int("retry_count", job.RetryCount),
			zap.Int("max_retries", job.MaxRetries),
		)
		s.retryLater(job, s.config.RetryDelay)
	}
}

// retryLater resubmits job once delay has passed; a stopped scheduler drops it
func (s *Scheduler) retryLater(job *Job, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.retries, timer)
		s.mu.Unlock()

		if err := s.SubmitJob(job); err != nil {
			s.logger.Warn("Failed to re-queue job for retry",
				zap.String("job_id", job.ID.String()),
				zap.Error(err),
			)
		}
	})
	s.retries[timer] = struct{}{}
}

func (s *Scheduler) record(ctx context.Context, job *Job, outcome string) {
	if s.jobsRun == nil {
		return
	}
	s.jobsRun.Inc(ctx, telemetry.AttrJob.String(string(job.Type)), attribute.String("outcome", outcome))
}
