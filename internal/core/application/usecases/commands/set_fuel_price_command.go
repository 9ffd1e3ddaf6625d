package commands

import (
	"errors"

	"fueldelivery/internal/core/domain/model/catalog"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrSetFuelPriceCommandIsNotConstructed = errors.New(
	"SetFuelPriceCommand must be created via NewSetFuelPriceCommand constructor",
)

// SetFuelPriceCommand publishes the global price of a fuel type. Prices are
// seeded from configuration at startup.
type SetFuelPriceCommand struct {
	price catalog.FuelPrice

	guard guard.ConstructorGuard
}

func NewSetFuelPriceCommand(fuelType, price string) (SetFuelPriceCommand, error) {
	ft, ftErr := kernel.NewFuelType(fuelType)
	amount, amountErr := kernel.MoneyFromString(price)
	if err := errors.Join(ftErr, amountErr); err != nil {
		return SetFuelPriceCommand{}, err
	}

	fp, err := catalog.NewFuelPrice(ft, amount)
	if err != nil {
		return SetFuelPriceCommand{}, err
	}

	return SetFuelPriceCommand{
		price: fp,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SetFuelPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetFuelPriceCommandIsNotConstructed)
}

func (c SetFuelPriceCommand) Price() catalog.FuelPrice {
	return c.price
}
