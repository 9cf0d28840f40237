package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultZipRefreshSchedule runs the refresh every day at 03:00 (seconds field first).
const DefaultZipRefreshSchedule = "0 0 3 * * *"

// ZipReloader is implemented by services.GeoIndex.
type ZipReloader interface {
	Reload(ctx context.Context) (int, error)
}

// ZipRefreshJob reloads the ZIP reference table on a schedule. A failed reload keeps the
// previous table in service, so failures are logged and the next run tries again.
type ZipRefreshJob struct {
	reloader ZipReloader
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewZipRefreshJob creates the job. An empty schedule falls back to DefaultZipRefreshSchedule
// and a non-positive timeout to one minute.
func NewZipRefreshJob(reloader ZipReloader, schedule string, timeout time.Duration, logger *slog.Logger) *ZipRefreshJob {
	if schedule == "" {
		schedule = DefaultZipRefreshSchedule
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &ZipRefreshJob{
		reloader: reloader,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "zip_refresh_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *ZipRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "ZIP refresh job started", "schedule", j.schedule)
	return nil
}

// Run performs one reload.
func (j *ZipRefreshJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	started := time.Now()
	count, err := j.reloader.Reload(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "ZIP refresh failed, keeping previous table", "error", err)
		return err
	}

	j.logger.InfoContext(ctx, "ZIP table refreshed",
		"zips", count,
		"took", time.Since(started))
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *ZipRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "ZIP refresh job stopped")
}
