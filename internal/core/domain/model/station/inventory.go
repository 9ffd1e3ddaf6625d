package station

import (
	"errors"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

// Seed values for a freshly registered station.
var (
	DefaultSeedQuantity = kernel.MustQuantity("1000")
	DefaultSeedPrice    = kernel.MustMoney("96.72")
)

var ErrInventoryItemIsNotConstructed = errors.New("InventoryItem must be created via NewInventoryItem constructor")

// InventoryItem is one ledger row: the quantity a station has of one fuel type and
// the price it lists. The ledger is informational; placing or delivering orders
// does not consume it.
type InventoryItem struct {
	id        kernel.UUID
	managerID kernel.UUID
	fuelType  kernel.FuelType
	quantity  kernel.Quantity
	price     kernel.Money
	guard     guard.ConstructorGuard
}

func NewInventoryItem(
	id, managerID kernel.UUID,
	fuelType kernel.FuelType,
	quantity kernel.Quantity,
	price kernel.Money,
) (*InventoryItem, error) {
	if err := errors.Join(id.Validate(), managerID.Validate(), fuelType.Validate()); err != nil {
		return nil, err
	}
	return &InventoryItem{
		id:        id,
		managerID: managerID,
		fuelType:  fuelType,
		quantity:  quantity,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i *InventoryItem) Validate() error {
	if i == nil {
		return ErrInventoryItemIsNotConstructed
	}
	return i.guard.Validate(ErrInventoryItemIsNotConstructed)
}

func (i *InventoryItem) ID() kernel.UUID {
	return i.id
}

func (i *InventoryItem) ManagerID() kernel.UUID {
	return i.managerID
}

func (i *InventoryItem) FuelType() kernel.FuelType {
	return i.fuelType
}

func (i *InventoryItem) Quantity() kernel.Quantity {
	return i.quantity
}

func (i *InventoryItem) Price() kernel.Money {
	return i.price
}

// EnsureOwnedBy returns Forbidden unless the row belongs to managerID's station.
func (i *InventoryItem) EnsureOwnedBy(managerID kernel.UUID) error {
	if !i.managerID.IsEqual(managerID) {
		return errs.NewForbiddenError("inventory", i.id.String())
	}
	return nil
}

// SetQuantity overwrites the available quantity. Quantity values are non-negative
// by construction.
func (i *InventoryItem) SetQuantity(quantity kernel.Quantity) {
	i.quantity = quantity
}
