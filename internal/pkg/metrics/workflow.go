package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// WorkflowMetrics counts what happens to orders and agents.
type WorkflowMetrics struct {
	transitions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	released    prometheus.Counter
}

func NewWorkflowMetrics(reg prometheus.Registerer) *WorkflowMetrics {
	if reg == nil {
		return &WorkflowMetrics{}
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_changes_total",
		Help: "Committed order status changes by resulting status.",
	}, []string{"status"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "workflow_failures_total",
		Help: "Rejected workflow requests by error kind.",
	}, []string{"kind"})
	released := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "agents_released_by_sweep_total",
		Help: "Busy agents returned to Available by the reconciliation sweep.",
	})
	reg.MustRegister(transitions, failures, released)
	return &WorkflowMetrics{
		transitions: transitions,
		failures:    failures,
		released:    released,
	}
}

// ObserveStatusChange counts one committed transition into status.
func (w *WorkflowMetrics) ObserveStatusChange(status string) {
	if w == nil || w.transitions == nil {
		return
	}
	w.transitions.WithLabelValues(normalizeLabel(status)).Inc()
}

// IncFailure counts a request refused with an error of the given kind.
func (w *WorkflowMetrics) IncFailure(kind string) {
	if w == nil || w.failures == nil {
		return
	}
	w.failures.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (w *WorkflowMetrics) AddReleasedAgents(n int) {
	if w == nil || w.released == nil || n <= 0 {
		return
	}
	w.released.Add(float64(n))
}
