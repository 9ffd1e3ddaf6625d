package kafka

import (
	"context"

	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/core/ports"
	"fueldelivery/internal/pkg/metrics"
)

// MeteredPublisher counts status changes before handing them to the next publisher.
// The unit of work only publishes after commit, so the counter sees committed
// transitions only.
type MeteredPublisher struct {
	next    ports.OrderEventPublisher
	metrics *metrics.WorkflowMetrics
}

func NewMeteredPublisher(next ports.OrderEventPublisher, m *metrics.WorkflowMetrics) *MeteredPublisher {
	return &MeteredPublisher{next: next, metrics: m}
}

func (p *MeteredPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	for _, event := range events {
		p.metrics.ObserveStatusChange(event.Status.String())
	}
	return p.next.Publish(ctx, events...)
}
