package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrgProvider lists the organizations jobs run for
type OrgProvider interface {
	FindActiveIDs(ctx context.Context) ([]uuid.UUID, error)
}

// IntervalTrigger submits one job per active organization and job type on
// every tick, plus once at start.
type IntervalTrigger struct {
	interval   time.Duration
	types      []JobType
	maxRetries int
	scheduler  *Scheduler
	orgs       OrgProvider
	logger     *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewIntervalTrigger creates a trigger for the given job types
func NewIntervalTrigger(
	interval time.Duration,
	types []JobType,
	maxRetries int,
	scheduler *Scheduler,
	orgs OrgProvider,
	logger *zap.Logger,
) *IntervalTrigger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntervalTrigger{
		interval:   interval,
		types:      types,
		maxRetries: maxRetries,
		scheduler:  scheduler,
		orgs:       orgs,
		logger:     logger.Named("scheduler.trigger"),
	}
}

// Start starts the trigger loop
func (t *IntervalTrigger) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.isRunning {
		return nil
	}
	if t.interval <= 0 {
		return ErrInvalidConfig
	}
	t.isRunning = true

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.wg.Add(1)
	go t.runLoop(ctx)

	t.logger.Info("Interval trigger started",
		zap.Duration("interval", t.interval),
		zap.Int("job_types", len(t.types)),
	)
	return nil
}

// Stop stops the trigger loop
func (t *IntervalTrigger) Stop(ctx context.Context) error {
	t.mu.Lock()
	if !t.isRunning {
		t.mu.Unlock()
		return nil
	}
	t.isRunning = false
	t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.logger.Info("Interval trigger stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *IntervalTrigger) runLoop(ctx context.Context) {
	defer t.wg.Done()

	t.Fire(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Fire(ctx)
		}
	}
}

// Fire submits jobs for every active organization now. It returns the number
// of jobs queued.
func (t *IntervalTrigger) Fire(ctx context.Context) int {
	orgIDs, err := t.orgs.FindActiveIDs(ctx)
	if err != nil {
		t.logger.Error("Failed to list active organizations", zap.Error(err))
		return 0
	}

	submitted := 0
	for _, orgID := range orgIDs {
		for _, jobType := range t.types {
			err := t.scheduler.SubmitJob(NewJob(orgID, jobType, t.maxRetries))
			switch {
			case err == nil:
				submitted++
			case errors.Is(err, ErrSchedulerNotRunning):
				return submitted
			default:
				t.logger.Warn("Failed to submit job",
					zap.String("org_id", orgID.String()),
					zap.String("job_type", string(jobType)),
					zap.Error(err),
				)
			}
		}
	}

	t.logger.Debug("Scheduled periodic jobs",
		zap.Int("organizations", len(orgIDs)),
		zap.Int("jobs", submitted),
	)
	return submitted
}
