package commands

import (
	"context"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/core/domain/services"
)

// ReconcileAgentsCommandHandler runs the reconciliation sweep: every Busy agent
// that no In Progress order references is released.
//
// Busy agents are locked before the In Progress orders are read. An assignment
// holds the agent row lock until it commits, so the sweep either waits for it and
// then sees its order, or runs first and sees the agent Available and skips it.
// Releases are version-checked writes; a sweep that loses a race fails and leaves
// nothing half-applied, and the next sweep picks up where it left off.
type ReconcileAgentsCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.AgentReconciler
}

func NewReconcileAgentsCommandHandler(uowFactory UoWFactory) ReconcileAgentsCommandHandler {
	return ReconcileAgentsCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewAgentReconciler(),
	}
}

// Handle returns the number of agents released.
func (h ReconcileAgentsCommandHandler) Handle(ctx context.Context, cmd ReconcileAgentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	orderRepo := uow.OrderRepository()

	var (
		busy       []*agent.Agent
		inProgress []*order.Order
		err        error
	)
	if managerID := cmd.ManagerID(); managerID != nil {
		if busy, err = agentRepo.ListBusyByManager(ctx, *managerID); err != nil {
			return 0, err
		}
		if len(busy) == 0 {
			return 0, nil
		}
		if inProgress, err = orderRepo.ListInProgressByManager(ctx, *managerID); err != nil {
			return 0, err
		}
	} else {
		if busy, err = agentRepo.ListBusy(ctx); err != nil {
			return 0, err
		}
		if len(busy) == 0 {
			return 0, nil
		}
		if inProgress, err = orderRepo.ListInProgress(ctx); err != nil {
			return 0, err
		}
	}

	released := h.reconciler.Reconcile(busy, inProgress)
	if len(released) == 0 {
		return 0, nil
	}

	for _, a := range released {
		if err = agentRepo.Update(ctx, a); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(released), nil
}
