package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// ScheduledJob is a background task with its own schedule.
type ScheduledJob interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []ScheduledJob
	started []ScheduledJob
}

// ZipRefreshConfig configures the ZIP refresh job.
type ZipRefreshConfig struct {
	Enabled  bool
	Schedule string
	Timeout  time.Duration
}

// NewJobManager creates a job manager with every job enabled by the configuration.
func NewJobManager(reloader ZipReloader, zipRefresh ZipRefreshConfig, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if zipRefresh.Enabled && reloader != nil {
		jm.jobs = append(jm.jobs, NewZipRefreshJob(reloader, zipRefresh.Schedule, zipRefresh.Timeout, logger))
	}
	return jm
}

// NewJobManagerWith manages an explicit list of jobs.
func NewJobManagerWith(jobs ...ScheduledJob) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}

// Len is the number of managed jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
