package commands

import (
	"context"
	"time"

	"fueldelivery/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler accepts a Pending order at the manager's station.
//
// Errors: errs.ErrForbidden for a non-manager principal or another station's
// order, errs.ErrObjectNotFound for an unknown order, errs.ErrInvalidTransition
// when the order is no longer Pending (including a lost concurrent race).
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.EnsureManagedBy(managerID); err != nil {
		return err
	}

	from := o.Status()
	if err = o.Confirm(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return orderConflict(err, from, order.Confirmed)
	}

	return uow.Commit(ctx)
}
