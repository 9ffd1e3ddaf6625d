package commands

import (
	"context"
)

// UpdateInventoryCommandHandler overwrites the quantity of a manager's inventory row.
type UpdateInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewUpdateInventoryCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryCommandHandler {
	return UpdateInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateInventoryCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	managerID, err := cmd.Principal().ManagerID()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()

	item, err := inventoryRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if err = item.EnsureOwnedBy(managerID); err != nil {
		return err
	}

	item.SetQuantity(cmd.Quantity())
	if err = inventoryRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
