package services

import (
	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/order"
)

// AgentReconciler repairs drift between agent status and order assignments:
// a Busy agent that no In Progress order references is released.
//
// The sweep is idempotent. Agents that are not Busy, and Busy agents still
// referenced by an In Progress order, are never touched, so running it while an
// assignment is in flight cannot demote the freshly assigned agent as long as the
// caller reads orders after locking the busy agents.
type AgentReconciler struct{}

func NewAgentReconciler() AgentReconciler {
	return AgentReconciler{}
}

// Reconcile releases every agent in busy that no order in inProgress references and
// returns the released agents. Orders outside In Progress are ignored.
func (s AgentReconciler) Reconcile(busy []*agent.Agent, inProgress []*order.Order) []*agent.Agent {
	referenced := make(map[string]struct{}, len(inProgress))
	for _, o := range inProgress {
		if o.Status() != order.InProgress || o.AgentID() == nil {
			continue
		}
		referenced[o.AgentID().String()] = struct{}{}
	}

	var released []*agent.Agent
	for _, a := range busy {
		if !a.IsBusy() {
			continue
		}
		if _, ok := referenced[a.ID().String()]; ok {
			continue
		}
		a.Release()
		released = append(released, a)
	}
	return released
}
