package commands

import (
	"context"
	"time"

	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/core/domain/services"
)

// AssignAgentCommandHandler orchestrates agent assignment. The order and the agent
// are loaded with row locks and written in one transaction, so the three-part
// effect (order In Progress, order references agent, agent Busy) is all-or-nothing.
//
// Concurrent assignments of the same agent serialize on the agent row; the loser
// observes a Busy agent and fails with agent.ErrAgentUnavailable. A loser that
// slips past the lock (databases without row locking) is caught by the version
// check and reported the same way.
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.AgentAssigner
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignAgentCommandHandler(uowFactory UoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewAgentAssigner(),
	}
}

// Handle checks, in order: manager principal, order exists, agent exists, then the
// ownership, status and availability rules of services.AgentAssigner.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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

	a, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	from := o.Status()
	if err = h.assigner.Assign(o, a, managerID, time.Now().UTC()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, a); err != nil {
		return agentConflict(err)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return orderConflict(err, from, order.InProgress)
	}

	return uow.Commit(ctx)
}
