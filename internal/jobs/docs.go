// Package jobs provides scheduled background tasks for the freight hub.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operational checks.
//
// # Available Jobs
//
// 1. DepartureReminderJob - Runs hourly and warns about open batches whose
// estimated departure has already passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getBatchesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Failed job starts abort application startup
package jobs
