package jobs

import (
	"fmt"
	"log/slog"

	"fueldelivery/internal/pkg/metrics"
)

type scheduledJob interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts and stops the background jobs of the service as one unit.
type JobManager struct {
	jobs []scheduledJob
}

func NewJobManager(
	reconcileAgentsHandler reconcileAgentsHandler,
	sweepSchedule string,
	jobMetrics *metrics.CronJobMetrics,
	workflowMetrics *metrics.WorkflowMetrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []scheduledJob{
			NewAgentSweepJob(reconcileAgentsHandler, sweepSchedule, jobMetrics, workflowMetrics, logger),
		},
	}
}

// StartAll starts the jobs in order. When one fails, the ones already running
// are stopped before the error is returned.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("start %s job: %w", job.Name(), err)
		}
	}
	return nil
}

// StopAll stops the jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
