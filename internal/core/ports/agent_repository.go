// Package ports defines the contracts between the domain core and its adapters:
// repositories bound to a unit of work, the global price catalog, the order
// event publisher and password hashing.
package ports

import (
	"context"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for agent aggregates.
type AgentRepository interface {
	// Add persists a new agent.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists a status change. The write is refused with
	// errs.ErrVersionIsInvalid when the stored version moved since the agent was read.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get loads an agent and locks its row for the rest of the transaction.
	// Returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// Delete removes an agent. Callers check ErrAgentInUse beforehand.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListByManager returns the manager's roster ordered by name.
	ListByManager(ctx context.Context, managerID kernel.UUID) ([]*agent.Agent, error)

	// ListBusyByManager loads and locks the manager's Busy agents.
	ListBusyByManager(ctx context.Context, managerID kernel.UUID) ([]*agent.Agent, error)

	// ListBusy loads and locks every Busy agent across stations.
	ListBusy(ctx context.Context) ([]*agent.Agent, error)
}
