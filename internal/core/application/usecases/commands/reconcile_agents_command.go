package commands

import (
	"errors"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrReconcileAgentsCommandIsNotConstructed = errors.New(
	"ReconcileAgentsCommand must be created via NewReconcileAgentsCommand constructor",
)

// ReconcileAgentsCommand triggers the agent reconciliation sweep, either for one
// manager's roster or for every manager.
//
// Example:
//
//	cmd, _ := NewReconcileAgentsCommand(&managerID) // dashboard load
//	cmd, _ = NewReconcileAgentsCommand(nil)         // scheduled sweep
type ReconcileAgentsCommand struct {
	managerID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewReconcileAgentsCommand(managerID *kernel.UUID) (ReconcileAgentsCommand, error) {
	if managerID != nil {
		if err := managerID.Validate(); err != nil {
			return ReconcileAgentsCommand{}, err
		}
	}
	return ReconcileAgentsCommand{
		managerID: managerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileAgentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAgentsCommandIsNotConstructed)
}

// ManagerID is nil for a sweep across all managers.
func (c ReconcileAgentsCommand) ManagerID() *kernel.UUID {
	return c.managerID
}
