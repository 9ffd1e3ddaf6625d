package services

import (
	"time"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
)

// AgentAssigner is a domain service that binds an agent to a confirmed order.
// The order and the agent change together or not at all.
//
// Preconditions are checked in this order, each with its own error:
//   - order and agent belong to the acting manager (errs.ErrForbidden)
//   - order is Confirmed (errs.ErrInvalidTransition)
//   - agent is Available (agent.ErrAgentUnavailable)
//
// Example usage:
//
//	assigner := services.NewAgentAssigner()
//	if err := assigner.Assign(o, a, managerID, time.Now()); err != nil {
//	    return err
//	}
//	// o is In Progress with a.ID(); a is Busy. Persist both in one unit of work.
type AgentAssigner struct{}

func NewAgentAssigner() AgentAssigner {
	return AgentAssigner{}
}

// Assign moves o to In Progress with a as its agent and marks a Busy.
func (s AgentAssigner) Assign(o *order.Order, a *agent.Agent, managerID kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := o.EnsureManagedBy(managerID); err != nil {
		return err
	}
	if err := a.EnsureOwnedBy(managerID); err != nil {
		return err
	}

	// Surface InvalidTransition before touching the agent.
	if _, err := o.Status().Start(); err != nil {
		return err
	}

	if err := a.Occupy(); err != nil {
		return err
	}

	if err := o.AssignAgent(a.ID(), now); err != nil {
		a.Release()
		return err
	}

	return nil
}
