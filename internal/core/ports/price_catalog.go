package ports

import (
	"context"

	"fueldelivery/internal/core/domain/model/catalog"
	"fueldelivery/internal/core/domain/model/kernel"
)

// PriceCatalog is the global fuel price lookup.
type PriceCatalog interface {
	// CurrentPrice returns catalog.ErrPriceUnavailable when no price is configured.
	CurrentPrice(ctx context.Context, fuelType kernel.FuelType) (kernel.Money, error)
	// SetPrice creates or replaces the price of a fuel type.
	SetPrice(ctx context.Context, price catalog.FuelPrice) error
	// List returns the whole price list ordered by fuel type.
	List(ctx context.Context) ([]catalog.FuelPrice, error)
}
