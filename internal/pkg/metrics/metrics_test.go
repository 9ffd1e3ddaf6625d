package metrics_test

import (
	"testing"
	"time"

	"fueldelivery/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronJobMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewCronJobMetrics(reg)

	m.ObserveDuration("agent-sweep", 250*time.Millisecond)
	m.IncSuccess("agent-sweep")
	m.IncSuccess("agent-sweep")
	m.IncFailure("")

	count, err := testutil.GatherAndCount(reg, "job_success_total", "job_failure_total", "job_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		switch family.GetName() {
		case "job_success_total":
			assert.InDelta(t, 2, family.GetMetric()[0].GetCounter().GetValue(), 0)
			assert.Equal(t, "agent-sweep", family.GetMetric()[0].GetLabel()[0].GetValue())
		case "job_failure_total":
			assert.Equal(t, "unknown", family.GetMetric()[0].GetLabel()[0].GetValue())
		case "job_duration_seconds":
			assert.InDelta(t, 0.25, family.GetMetric()[0].GetHistogram().GetSampleSum(), 0.0001)
		}
	}
}

func TestWorkflowMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWorkflowMetrics(reg)

	m.ObserveStatusChange("Confirmed")
	m.ObserveStatusChange("Confirmed")
	m.ObserveStatusChange("Delivered")
	m.IncFailure("AgentUnavailable")
	m.AddReleasedAgents(3)
	m.AddReleasedAgents(0)

	count, err := testutil.GatherAndCount(reg, "order_status_changes_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "workflow_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == "agents_released_by_sweep_total" {
			assert.InDelta(t, 3, family.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
}

func TestNilRegistryIsSafe(t *testing.T) {
	var nilWorkflow *metrics.WorkflowMetrics
	var nilCron *metrics.CronJobMetrics

	assert.NotPanics(t, func() {
		w := metrics.NewWorkflowMetrics(nil)
		w.ObserveStatusChange("Pending")
		w.IncFailure("NotFound")
		w.AddReleasedAgents(1)
		nilWorkflow.ObserveStatusChange("Pending")

		c := metrics.NewCronJobMetrics(nil)
		c.ObserveDuration("job", time.Second)
		c.IncSuccess("job")
		nilCron.IncFailure("job")
	})
}
