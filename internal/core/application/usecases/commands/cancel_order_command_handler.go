package commands

import (
	"context"
	"time"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order that has not reached a terminal
// status and releases its agent, if any.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = ensureCanCancel(o, cmd.Principal()); err != nil {
		return err
	}

	from := o.Status()
	released, err := o.Cancel(time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return orderConflict(err, from, order.Cancelled)
	}

	if err = releaseAgent(ctx, agentRepo, released); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureCanCancel(o *order.Order, principal identity.Principal) error {
	switch {
	case principal.IsUser():
		return o.EnsurePlacedBy(principal.ID())
	case principal.IsManager():
		return o.EnsureManagedBy(principal.ID())
	default:
		return errs.NewForbiddenError("order", o.ID().String())
	}
}
