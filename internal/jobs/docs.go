// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// ZipRefreshJob reloads the ZIP reference table into the GeoIndex. Queries keep using the
// previous table until the new one is fully built, and a failed reload leaves it in place.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(geoIndex, jobs.ZipRefreshConfig{
//		Enabled:  true,
//		Schedule: "0 0 3 * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with a leading seconds field. The default refresh
// runs daily at 03:00 server time.
//
// # Error Handling
//
// - A failed reload is logged at error level and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
