package commands

import (
	"context"
	"time"

	"fueldelivery/internal/core/domain/model/order"
)

// RejectOrderCommandHandler rejects an order and releases its agent, if any, in
// the same transaction. Rejecting an order that never had an agent leaves every
// agent untouched.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewRejectOrderCommandHandler(uowFactory UoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
	released, err := o.Reject(time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return orderConflict(err, from, order.Rejected)
	}

	if err = releaseAgent(ctx, agentRepo, released); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
