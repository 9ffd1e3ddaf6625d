package commands

import (
	"context"

	"fueldelivery/internal/core/domain/model/agent"
)

// AddAgentCommandHandler persists a new Available agent for the acting manager.
type AddAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

func NewAddAgentCommandHandler(uowFactory AgentUoWFactory) AddAgentCommandHandler {
	return AddAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddAgentCommandHandler) Handle(ctx context.Context, cmd AddAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	managerID, err := cmd.Principal().ManagerID()
	if err != nil {
		return err
	}

	a, err := agent.NewAgent(cmd.AgentID(), managerID, cmd.Name(), cmd.Contact())
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

	if err = uow.AgentRepository().Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
