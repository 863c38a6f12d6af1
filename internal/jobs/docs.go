// Package jobs provides scheduled background tasks for the control tower.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderWatchJob - Runs every minute to log how many orders are still in
// flight, broken down by state. Pickup notification can fail after an order
// is already committed as IN_DELIVERY, so the counts give operators a view of
// orders that may need manual follow-up. The job observes through the read
// side and never mutates state.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uncompletedOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
