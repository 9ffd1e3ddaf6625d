package ports

import (
	"context"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/station"
	"fueldelivery/internal/core/domain/model/user"
)

// StationRepository persists stations together with their declared fuel types.
type StationRepository interface {
	Add(ctx context.Context, aggregate *station.Station) error
	// Get returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*station.Station, error)
	// GetByEmail matches the normalized email; errs.ErrObjectNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*station.Station, error)
}

// InventoryRepository persists the per-station fuel ledger.
type InventoryRepository interface {
	AddAll(ctx context.Context, items []*station.InventoryItem) error
	Update(ctx context.Context, item *station.InventoryItem) error
	// Get locks the row; errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*station.InventoryItem, error)
	ListByManager(ctx context.Context, managerID kernel.UUID) ([]*station.InventoryItem, error)
}

// UserRepository persists customer accounts.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
