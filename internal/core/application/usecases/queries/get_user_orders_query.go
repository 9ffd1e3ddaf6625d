package queries

import (
	"errors"
	"time"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery reads the order history of a user.
type GetUserOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery returns errs.ErrForbidden for a manager principal.
func NewGetUserOrdersQuery(principal identity.Principal) (GetUserOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	userID, err := principal.UserID()
	if err != nil {
		return GetUserOrdersQuery{}, err
	}
	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

type GetUserOrdersQueryResponse struct {
	Orders []UserOrder
}

// UserOrder is one row of the history. AgentName and AgentContact are empty
// unless an agent is on the way.
type UserOrder struct {
	ID            kernel.UUID
	StationID     kernel.UUID
	StationName   string
	FuelType      string
	Quantity      kernel.Quantity
	UnitPrice     kernel.Money
	Subtotal      kernel.Money
	ServiceFee    kernel.Money
	TotalAmount   kernel.Money
	PaymentMethod order.PaymentMethod
	Address       string
	Status        order.Status
	AgentName     string
	AgentContact  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
