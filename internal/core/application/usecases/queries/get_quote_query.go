package queries

import (
	"errors"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrGetQuoteQueryIsNotConstructed = errors.New("GetQuoteQuery must be created via NewGetQuoteQuery constructor")

// GetQuoteQuery prices an order before the user places it.
type GetQuoteQuery struct {
	stationID kernel.UUID
	fuelType  kernel.FuelType
	quantity  kernel.Quantity

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery only accepts user principals; managers do not buy fuel.
func NewGetQuoteQuery(principal identity.Principal, stationID, fuelType, quantity string) (GetQuoteQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetQuoteQuery{}, err
	}
	if _, err := principal.UserID(); err != nil {
		return GetQuoteQuery{}, err
	}

	id, idErr := kernel.UUIDFromString(stationID)
	ft, ftErr := kernel.NewFuelType(fuelType)
	q, qErr := kernel.QuantityFromString(quantity)
	if err := errors.Join(idErr, ftErr, qErr); err != nil {
		return GetQuoteQuery{}, err
	}

	return GetQuoteQuery{
		stationID: id,
		fuelType:  ft,
		quantity:  q,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

func (q GetQuoteQuery) StationID() kernel.UUID {
	return q.stationID
}

func (q GetQuoteQuery) FuelType() kernel.FuelType {
	return q.fuelType
}

func (q GetQuoteQuery) Quantity() kernel.Quantity {
	return q.quantity
}

type GetQuoteQueryResponse struct {
	StationID   kernel.UUID
	StationName string
	FuelType    string
	Quantity    kernel.Quantity
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
	ServiceFee  kernel.Money
	Total       kernel.Money
}
