package order

import (
	"time"

	"fueldelivery/internal/core/domain/model/kernel"
)

// StatusChanged is raised on placement and on every accepted transition.
type StatusChanged struct {
	OrderID    kernel.UUID
	UserID     kernel.UUID
	ManagerID  kernel.UUID
	AgentID    *kernel.UUID
	Status     Status
	OccurredAt time.Time
}
