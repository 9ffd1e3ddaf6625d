package commands

import (
	"context"
	"time"

	"fueldelivery/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler completes an In Progress order: the order becomes
// Delivered, its agent reference is cleared and the agent returns to Available.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeliverOrderCommandHandler(uowFactory UoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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
	agentRepo := uow.AgentRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.EnsureManagedBy(managerID); err != nil {
		return err
	}

	from := o.Status()
	agentID, err := o.Deliver(time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return orderConflict(err, from, order.Delivered)
	}

	if err = releaseAgent(ctx, agentRepo, &agentID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
