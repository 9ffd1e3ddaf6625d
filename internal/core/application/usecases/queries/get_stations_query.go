package queries

import (
	"errors"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrGetStationsQueryIsNotConstructed = errors.New(
	"GetStationsQuery must be created via NewGetStationsQuery constructor",
)

// GetStationsQuery lists every station a user can order from.
type GetStationsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStationsQuery() (GetStationsQuery, error) {
	return GetStationsQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q GetStationsQuery) Validate() error {
	return q.guard.Validate(ErrGetStationsQueryIsNotConstructed)
}

type GetStationsQueryResponse struct {
	Stations []StationResponse
}

type StationResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	FuelTypes []string
}
