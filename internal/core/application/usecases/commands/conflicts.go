package commands

import (
	"context"
	"errors"
	"fmt"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/core/ports"
	"fueldelivery/internal/pkg/errs"
)

// orderConflict reports a lost race on an order as the transition the caller
// attempted from a status that no longer holds.
func orderConflict(err error, from order.Status, to order.Status) error {
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return errs.NewInvalidTransitionErrorWithCause(from.String(), to.String(), err)
	}
	return err
}

// agentConflict reports a lost race on an agent as the agent being unavailable.
func agentConflict(err error) error {
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return fmt.Errorf("%w: %w", agent.ErrAgentUnavailable, err)
	}
	return err
}

// releaseAgent frees the agent an order let go of. A missing or already
// Available agent is left as is.
func releaseAgent(ctx context.Context, repo ports.AgentRepository, agentID *kernel.UUID) error {
	if agentID == nil {
		return nil
	}

	a, err := repo.Get(ctx, *agentID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !a.IsBusy() {
		return nil
	}

	a.Release()
	return repo.Update(ctx, a)
}
