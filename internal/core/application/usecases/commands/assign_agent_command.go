package commands

import (
	"errors"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand binds one of the manager's Available agents to a Confirmed order.
//
// Example:
//
//	cmd, err := NewAssignAgentCommand(principal, orderID, agentID)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignAgentCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, agent.ErrAgentUnavailable):
//	    // someone else took the agent first
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // the order is not Confirmed
//	}
type AssignAgentCommand struct {
	principal identity.Principal
	orderID   kernel.UUID
	agentID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignAgentCommand(principal identity.Principal, orderID, agentID kernel.UUID) (AssignAgentCommand, error) {
	if err := errors.Join(principal.Validate(), orderID.Validate(), agentID.Validate()); err != nil {
		return AssignAgentCommand{}, err
	}
	return AssignAgentCommand{
		principal: principal,
		orderID:   orderID,
		agentID:   agentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

func (c AssignAgentCommand) Principal() identity.Principal {
	return c.principal
}

func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}
