package commands

import (
	"context"

	"fueldelivery/internal/core/domain/model/agent"
)

// RemoveAgentCommandHandler deletes an agent that no In Progress order references.
//
// The agent row is locked before the order check, and assignment locks the same
// row, so an assignment cannot slip in between the check and the delete.
type RemoveAgentCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveAgentCommandHandler(uowFactory UoWFactory) RemoveAgentCommandHandler {
	return RemoveAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ErrObjectNotFound, errs.ErrForbidden or agent.ErrAgentInUse.
func (h RemoveAgentCommandHandler) Handle(ctx context.Context, cmd RemoveAgentCommand) error {
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

	agentRepo := uow.AgentRepository()
	orderRepo := uow.OrderRepository()

	a, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}
	if err = a.EnsureOwnedBy(managerID); err != nil {
		return err
	}

	inUse, err := orderRepo.ExistsInProgressForAgent(ctx, a.ID())
	if err != nil {
		return err
	}
	if inUse {
		return agent.ErrAgentInUse
	}

	if err = agentRepo.Delete(ctx, a.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
