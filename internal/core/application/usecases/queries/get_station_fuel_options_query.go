package queries

import (
	"errors"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrGetStationFuelOptionsQueryIsNotConstructed = errors.New(
	"GetStationFuelOptionsQuery must be created via NewGetStationFuelOptionsQuery constructor",
)

// GetStationFuelOptionsQuery reads what a station sells and at which price.
type GetStationFuelOptionsQuery struct {
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStationFuelOptionsQuery(stationID string) (GetStationFuelOptionsQuery, error) {
	id, err := kernel.UUIDFromString(stationID)
	if err != nil {
		return GetStationFuelOptionsQuery{}, err
	}
	return GetStationFuelOptionsQuery{
		stationID: id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetStationFuelOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetStationFuelOptionsQueryIsNotConstructed)
}

func (q GetStationFuelOptionsQuery) StationID() kernel.UUID {
	return q.stationID
}

type GetStationFuelOptionsQueryResponse struct {
	StationID kernel.UUID
	Name      string
	Address   string
	Options   []FuelOption
}

// FuelOption pairs an inventory row with the global price a user will pay.
// GlobalPrice is nil when the catalog has no price for the fuel type yet.
type FuelOption struct {
	FuelType       string
	Available      kernel.Quantity
	InventoryPrice kernel.Money
	GlobalPrice    *kernel.Money
}
