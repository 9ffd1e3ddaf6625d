package jobs

import (
	"context"
	"log/slog"
	"time"

	"fueldelivery/internal/core/application/usecases/commands"
	"fueldelivery/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const agentSweepJobName = "agent_sweep"

type reconcileAgentsHandler interface {
	Handle(ctx context.Context, cmd commands.ReconcileAgentsCommand) (int, error)
}

// AgentSweepJob runs the reconciliation sweep for all managers on a schedule.
type AgentSweepJob struct {
	handler  reconcileAgentsHandler
	schedule string
	cron     *cron.Cron
	jobs     *metrics.CronJobMetrics
	workflow *metrics.WorkflowMetrics
	logger   *slog.Logger
}

func NewAgentSweepJob(
	handler reconcileAgentsHandler,
	schedule string,
	jobMetrics *metrics.CronJobMetrics,
	workflowMetrics *metrics.WorkflowMetrics,
	logger *slog.Logger,
) *AgentSweepJob {
	return &AgentSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		jobs:     jobMetrics,
		workflow: workflowMetrics,
		logger:   logger.With("component", "agent_sweep_job"),
	}
}

func (j *AgentSweepJob) Name() string {
	return agentSweepJobName
}

// Start registers the sweep under the configured schedule and starts the scheduler.
// An unparseable schedule is returned as an error.
func (j *AgentSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agent sweep job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single sweep and records its outcome.
func (j *AgentSweepJob) RunOnce(ctx context.Context) (int, error) {
	started := time.Now()

	cmd, err := commands.NewReconcileAgentsCommand(nil)
	if err != nil {
		return 0, err
	}

	released, err := j.handler.Handle(ctx, cmd)
	j.jobs.ObserveDuration(agentSweepJobName, time.Since(started))
	if err != nil {
		j.jobs.IncFailure(agentSweepJobName)
		j.logger.ErrorContext(ctx, "Agent sweep job failed", "error", err)
		return 0, err
	}

	j.jobs.IncSuccess(agentSweepJobName)
	j.workflow.AddReleasedAgents(released)
	if released > 0 {
		j.logger.InfoContext(ctx, "Released stale agents", "count", released)
	}
	return released, nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *AgentSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Agent sweep job stopped")
}
