// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. AutoAssignJob - Periodically pairs preparing orders with idle drones,
// restaurant by restaurant.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(autoAssignHandler, "", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The auto-assign job defaults to "*/15 * * * * *" (every 15 seconds, cron
// with a seconds field) and can be overridden through configuration. Drone
// movement is NOT a job: flights are long-lived goroutines owned by the
// movement scheduler, started once per assignment.
//
// # Error Handling
//
// An empty sweep is a normal outcome and is not logged. Per-pair assignment
// failures are logged and do not stop the remaining pairs or the schedule.
package jobs
