// Package catalog holds the global fuel price list used to quote and price orders.
// Prices are global: every station sells a fuel type at the same catalog price.
package catalog

import (
	"errors"
	"fmt"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"
)

// ErrPriceUnavailable is returned when no global price is configured for a fuel type.
var ErrPriceUnavailable = errors.New("price is unavailable")

// FuelPrice is one entry of the global price list.
type FuelPrice struct {
	FuelType kernel.FuelType
	Price    kernel.Money
}

func NewFuelPrice(fuelType kernel.FuelType, price kernel.Money) (FuelPrice, error) {
	if err := fuelType.Validate(); err != nil {
		return FuelPrice{}, err
	}
	if !price.IsPositive() {
		return FuelPrice{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	return FuelPrice{FuelType: fuelType, Price: price}, nil
}

// PriceUnavailableError names the fuel type that has no price.
type PriceUnavailableError struct {
	FuelType string
}

func NewPriceUnavailableError(fuelType kernel.FuelType) *PriceUnavailableError {
	return &PriceUnavailableError{FuelType: fuelType.String()}
}

func (e *PriceUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPriceUnavailable, e.FuelType)
}

func (e *PriceUnavailableError) Unwrap() error {
	return ErrPriceUnavailable
}
