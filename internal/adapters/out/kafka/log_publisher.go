package kafka

import (
	"context"
	"log/slog"

	"fueldelivery/internal/core/domain/model/order"
)

// LogPublisher stands in for Kafka when no broker is configured; events are
// only logged.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	for _, event := range events {
		p.logger.DebugContext(ctx, "order status changed",
			"orderId", event.OrderID.String(),
			"status", event.Status.String(),
		)
	}
	return nil
}
