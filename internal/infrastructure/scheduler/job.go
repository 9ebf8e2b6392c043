package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the status of a scheduled job
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
)

// JobType names a periodic maintenance task
type JobType string

const (
	// JobTypeLeaseExpiry expires active leases whose end date has passed
	JobTypeLeaseExpiry JobType = "lease_expiry"
	// JobTypeStaleUploads purges document uploads that were never confirmed
	JobTypeStaleUploads JobType = "stale_uploads"
)

// AllJobTypes returns the job types submitted on every tick
func AllJobTypes() []JobType {
	return []JobType{JobTypeLeaseExpiry, JobTypeStaleUploads}
}

// Job is one unit of work for a single organization
type Job struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	Type        JobType
	Status      JobStatus
	Error       string
	StartedAt   *time.Time
	CompletedAt *time.Time
	RetryCount  int
	MaxRetries  int
	NextRetryAt *time.Time
}

// NewJob creates a pending job
func NewJob(orgID uuid.UUID, jobType JobType, maxRetries int) *Job {
	return &Job{
		ID:         uuid.New(),
		OrgID:      orgID,
		Type:       jobType,
		Status:     JobStatusPending,
		MaxRetries: maxRetries,
	}
}

// Start marks the job as running
func (j *Job) Start() {
	now := time.Now()
	j.Status = JobStatusRunning
	j.StartedAt = &now
	j.Error = ""
}

// Complete marks the job as successful
func (j *Job) Complete() {
	now := time.Now()
	j.Status = JobStatusSuccess
	j.CompletedAt = &now
}

// Fail marks the job as failed
func (j *Job) Fail(err string) {
	now := time.Now()
	j.Status = JobStatusFailed
	j.CompletedAt = &now
	j.Error = err
}

// ShouldRetry returns true if the job should be retried
func (j *Job) ShouldRetry() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// ScheduleRetry schedules the job for retry
func (j *Job) ScheduleRetry(delay time.Duration) {
	j.RetryCount++
	j.Status = JobStatusPending
	next := time.Now().Add(delay)
	j.NextRetryAt = &next
	j.Error = ""
}

// JobExecutor executes jobs
type JobExecutor interface {
	Execute(ctx context.Context, job *Job) error
}

// HandlerFunc processes one job type for an organization and reports how
// many records it touched
type HandlerFunc func(ctx context.Context, orgID uuid.UUID) (int, error)

// Router dispatches jobs to the handler registered for their type
type Router struct {
	handlers map[JobType]HandlerFunc
	onResult func(job *Job, affected int)
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{handlers: make(map[JobType]HandlerFunc)}
}

// Handle registers fn for jobType
func (r *Router) Handle(jobType JobType, fn HandlerFunc) *Router {
	r.handlers[jobType] = fn
	return r
}

// OnResult sets a callback invoked after each successful job
func (r *Router) OnResult(fn func(job *Job, affected int)) *Router {
	r.onResult = fn
	return r
}

// Types returns the registered job types in AllJobTypes order
func (r *Router) Types() []JobType {
	var out []JobType
	for _, t := range AllJobTypes() {
		if _, ok := r.handlers[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Execute implements JobExecutor
func (r *Router) Execute(ctx context.Context, job *Job) error {
	fn, ok := r.handlers[job.Type]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJobType, job.Type)
	}
	n, err := fn(ctx, job.OrgID)
	if err != nil {
		return err
	}
	if r.onResult != nil {
		r.onResult(job, n)
	}
	return nil
}
