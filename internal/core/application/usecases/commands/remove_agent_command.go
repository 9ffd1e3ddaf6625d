package commands

import (
	"errors"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrRemoveAgentCommandIsNotConstructed = errors.New(
	"RemoveAgentCommand must be created via NewRemoveAgentCommand constructor",
)

// RemoveAgentCommand deletes an agent from the manager's roster.
type RemoveAgentCommand struct {
	principal identity.Principal
	agentID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveAgentCommand(principal identity.Principal, agentID kernel.UUID) (RemoveAgentCommand, error) {
	if err := errors.Join(principal.Validate(), agentID.Validate()); err != nil {
		return RemoveAgentCommand{}, err
	}
	return RemoveAgentCommand{
		principal: principal,
		agentID:   agentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveAgentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAgentCommandIsNotConstructed)
}

func (c RemoveAgentCommand) Principal() identity.Principal {
	return c.principal
}

func (c RemoveAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}
