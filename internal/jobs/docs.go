// Package jobs provides scheduled background tasks for the fuel delivery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AgentSweepJob - Runs the agent reconciliation sweep across every station,
// returning Busy agents that no In Progress order references to Available.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileAgentsHandler, "@every 1m", cronMetrics, workflowMetrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or descriptors such as
// "@every 1m". The sweep is idempotent, so overlapping or missed runs are harmless;
// managers also trigger it when loading their dashboard.
//
// # Error Handling
//
// A failed run is logged and counted; the next run retries from scratch.
package jobs
