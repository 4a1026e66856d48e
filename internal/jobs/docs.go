// Package jobs provides scheduled background tasks for the planning
// service, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ComputeExpiryJob - Runs every minute to fail compute jobs whose
// solver deadline has passed without a callback.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireComputesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job logs failures and keeps running; a compute finished
// concurrently by a callback is not an error and is skipped silently.
package jobs
