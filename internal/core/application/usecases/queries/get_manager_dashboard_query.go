package queries

import (
	"errors"
	"time"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/pkg/guard"
)

var ErrGetManagerDashboardQueryIsNotConstructed = errors.New(
	"GetManagerDashboardQuery must be created via NewGetManagerDashboardQuery constructor",
)

// GetManagerDashboardQuery reads everything a station manager sees on the dashboard.
// now anchors the "delivered today" counter.
type GetManagerDashboardQuery struct {
	managerID kernel.UUID
	now       time.Time

	guard guard.ConstructorGuard
}

// NewGetManagerDashboardQuery returns errs.ErrForbidden for a user principal.
func NewGetManagerDashboardQuery(principal identity.Principal, now time.Time) (GetManagerDashboardQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetManagerDashboardQuery{}, err
	}
	managerID, err := principal.ManagerID()
	if err != nil {
		return GetManagerDashboardQuery{}, err
	}
	return GetManagerDashboardQuery{
		managerID: managerID,
		now:       now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetManagerDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetManagerDashboardQueryIsNotConstructed)
}

func (q GetManagerDashboardQuery) ManagerID() kernel.UUID {
	return q.managerID
}

func (q GetManagerDashboardQuery) Now() time.Time {
	return q.now
}

// GetManagerDashboardQueryResponse is the manager's view of their station.
type GetManagerDashboardQueryResponse struct {
	Orders    []DashboardOrder
	Agents    []DashboardAgent
	Inventory []DashboardInventoryItem
	Stats     DashboardStats
}

type DashboardOrder struct {
	ID            kernel.UUID
	UserName      string
	UserMobile    string
	FuelType      string
	Quantity      kernel.Quantity
	TotalAmount   kernel.Money
	PaymentMethod order.PaymentMethod
	Address       string
	Status        order.Status
	AgentID       *kernel.UUID
	AgentName     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DashboardAgent struct {
	ID      kernel.UUID
	Name    string
	Contact string
	Status  agent.Status
}

type DashboardInventoryItem struct {
	ID       kernel.UUID
	FuelType string
	Quantity kernel.Quantity
	Price    kernel.Money
}

type DashboardStats struct {
	Pending         int
	InProgress      int
	DeliveredToday  int
	AvailableAgents int
}
