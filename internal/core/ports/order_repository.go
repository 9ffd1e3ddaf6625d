package ports

import (
	"context"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a transition. The write is refused with errs.ErrVersionIsInvalid
	// when another transaction changed the order since it was read; the loser of two
	// concurrent transitions sees that error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order and locks its row for the rest of the transaction.
	// Returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListInProgressByManager returns the manager's In Progress orders.
	ListInProgressByManager(ctx context.Context, managerID kernel.UUID) ([]*order.Order, error)

	// ListInProgress returns In Progress orders across all stations.
	ListInProgress(ctx context.Context) ([]*order.Order, error)

	// ExistsInProgressForAgent reports whether an In Progress order references the agent.
	ExistsInProgressForAgent(ctx context.Context, agentID kernel.UUID) (bool, error)
}
