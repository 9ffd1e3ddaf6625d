package commands

import (
	"errors"
	"strings"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrAddAgentCommandIsNotConstructed = errors.New(
	"AddAgentCommand must be created via NewAddAgentCommand constructor",
)

// AddAgentCommand adds a delivery agent to the acting manager's roster.
type AddAgentCommand struct {
	principal identity.Principal
	agentID   kernel.UUID
	name      string
	contact   string

	guard guard.ConstructorGuard
}

// NewAddAgentCommand returns agent.ErrNameIsRequired or agent.ErrContactIsRequired
// (both errs.ErrValueIsRequired) for blank input.
func NewAddAgentCommand(principal identity.Principal, agentID kernel.UUID, name, contact string) (AddAgentCommand, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)

	var nameErr, contactErr error
	if name == "" {
		nameErr = agent.ErrNameIsRequired
	}
	if contact == "" {
		contactErr = agent.ErrContactIsRequired
	}

	if err := errors.Join(principal.Validate(), agentID.Validate(), nameErr, contactErr); err != nil {
		return AddAgentCommand{}, err
	}

	return AddAgentCommand{
		principal: principal,
		agentID:   agentID,
		name:      name,
		contact:   contact,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddAgentCommand) Validate() error {
	return c.guard.Validate(ErrAddAgentCommandIsNotConstructed)
}

func (c AddAgentCommand) Principal() identity.Principal {
	return c.principal
}

func (c AddAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c AddAgentCommand) Name() string {
	return c.name
}

func (c AddAgentCommand) Contact() string {
	return c.contact
}
