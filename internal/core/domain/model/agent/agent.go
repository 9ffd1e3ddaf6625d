package agent

import (
	"errors"
	"fmt"
	"strings"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when an agent is added without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrContactIsRequired is returned when an agent is added without contact details.
	ErrContactIsRequired = errs.NewValueIsRequiredError("contact")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
	// ErrAgentUnavailable is returned when an agent that is not Available is assigned.
	ErrAgentUnavailable = errors.New("agent is not available")
	// ErrAgentInUse is returned when removing an agent still referenced by an In Progress order.
	ErrAgentInUse = errors.New("agent is assigned to an order in progress")
)

// Agent is a delivery worker belonging to one manager's station.
// It is an aggregate root whose status only changes through assignment,
// release on delivery/rejection/cancellation, and the reconciliation sweep.
//
// Business rules:
//   - Name and contact must be non-empty
//   - New agents are Available
//   - Only Available agents can be occupied; occupying makes them Busy
//   - Releasing a Busy agent makes it Available; releasing any other agent is a no-op
//
// Example usage:
//
//	a, err := agent.NewAgent(kernel.NewUUID(), managerID, "Ravi", "+91 98450 11111")
//	if err != nil {
//	    return err
//	}
//	if err := a.Occupy(); err != nil {
//	    return err // agent.ErrAgentUnavailable
//	}
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// managerID is the owning station manager
	managerID kernel.UUID
	name      string
	contact   string
	status    Status
	// version is the optimistic-lock counter loaded from storage
	version int
	guard   guard.ConstructorGuard
}

// NewAgent adds an Available agent to the manager's roster.
func NewAgent(id, managerID kernel.UUID, name, contact string) (*Agent, error) {
	a := &Agent{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setIDs(id, managerID),
		a.setName(name),
		a.setContact(contact),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent from persistent storage, keeping its status
// and version.
func RestoreAgent(id, managerID kernel.UUID, name, contact string, status Status, version int) (*Agent, error) {
	a := &Agent{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setIDs(id, managerID),
		a.setName(name),
		a.setContact(contact),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	a.status = status
	return a, nil
}

// IsEqual compares two agents by identifier.
func (a *Agent) IsEqual(other *Agent) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// Validate checks that the Agent was built by NewAgent or RestoreAgent.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *Agent) ID() kernel.UUID {
	return a.id
}

func (a *Agent) ManagerID() kernel.UUID {
	return a.managerID
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Contact() string {
	return a.contact
}

func (a *Agent) Status() Status {
	return a.status
}

func (a *Agent) Version() int {
	return a.version
}

func (a *Agent) IsAvailable() bool {
	return a.status == Available
}

func (a *Agent) IsBusy() bool {
	return a.status == Busy
}

// EnsureOwnedBy returns Forbidden unless the agent belongs to managerID.
func (a *Agent) EnsureOwnedBy(managerID kernel.UUID) error {
	if !a.managerID.IsEqual(managerID) {
		return errs.NewForbiddenError("agent", a.id.String())
	}
	return nil
}

// Occupy marks an Available agent Busy.
//
// Returns:
//   - error: ErrAgentUnavailable wrapped with the current status when the agent is not Available
func (a *Agent) Occupy() error {
	if a.status != Available {
		return fmt.Errorf("%w: %s is %s", ErrAgentUnavailable, a.id, a.status)
	}
	a.status = Busy
	return nil
}

// Release returns a Busy agent to Available. Agents in any other status are
// left untouched so that repeated releases are harmless.
func (a *Agent) Release() {
	if a.status == Busy {
		a.status = Available
	}
}

func (a *Agent) setIDs(id, managerID kernel.UUID) error {
	if err := errors.Join(id.Validate(), managerID.Validate()); err != nil {
		return err
	}
	a.id = id
	a.managerID = managerID
	return nil
}

func (a *Agent) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Agent) setContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return ErrContactIsRequired
	}
	a.contact = contact
	return nil
}
