package ports

import (
	"context"

	"fueldelivery/internal/core/domain/model/order"
)

// OrderEventPublisher forwards committed order status changes to other systems.
// It is invoked after the transaction commits; a publish failure never rolls back
// the workflow.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
