package commands

import (
	"errors"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrUpdateInventoryCommandIsNotConstructed = errors.New(
	"UpdateInventoryCommand must be created via NewUpdateInventoryCommand constructor",
)

// UpdateInventoryCommand sets the available quantity of one inventory row.
// The quantity arrives as form text; unparseable or negative input is rejected here.
type UpdateInventoryCommand struct {
	principal identity.Principal
	itemID    kernel.UUID
	quantity  kernel.Quantity

	guard guard.ConstructorGuard
}

func NewUpdateInventoryCommand(
	principal identity.Principal,
	itemID kernel.UUID,
	quantity string,
) (UpdateInventoryCommand, error) {
	q, qErr := kernel.QuantityFromString(quantity)
	if err := errors.Join(principal.Validate(), itemID.Validate(), qErr); err != nil {
		return UpdateInventoryCommand{}, err
	}
	return UpdateInventoryCommand{
		principal: principal,
		itemID:    itemID,
		quantity:  q,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateInventoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryCommandIsNotConstructed)
}

func (c UpdateInventoryCommand) Principal() identity.Principal {
	return c.principal
}

func (c UpdateInventoryCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateInventoryCommand) Quantity() kernel.Quantity {
	return c.quantity
}
