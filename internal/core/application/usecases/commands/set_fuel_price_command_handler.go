package commands

import (
	"context"

	"fueldelivery/internal/core/ports"
)

// SetFuelPriceCommandHandler writes a global fuel price through the catalog.
type SetFuelPriceCommandHandler struct {
	prices ports.PriceCatalog
}

func NewSetFuelPriceCommandHandler(prices ports.PriceCatalog) SetFuelPriceCommandHandler {
	return SetFuelPriceCommandHandler{
		prices: prices,
	}
}

func (h SetFuelPriceCommandHandler) Handle(ctx context.Context, cmd SetFuelPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.prices.SetPrice(ctx, cmd.Price())
}
