package commands_test

import (
	"testing"
	"time"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func managerPrincipal(t *testing.T) identity.Principal {
	t.Helper()
	p, err := identity.NewManager(kernel.NewUUID(), "Asha")
	require.NoError(t, err)
	return p
}

func userPrincipal(t *testing.T) identity.Principal {
	t.Helper()
	p, err := identity.NewUser(kernel.NewUUID(), "Vikram")
	require.NoError(t, err)
	return p
}

func pendingOrder(t *testing.T, userID, managerID kernel.UUID) *order.Order {
	t.Helper()
	petrol, err := kernel.NewFuelType("Petrol")
	require.NoError(t, err)
	quote, err := order.NewQuote(kernel.MustMoney("96.72"), kernel.MustQuantity("20"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), userID, managerID, petrol, quote,
		order.CashOnDelivery, "12 Ring Road", placedAt)
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func confirmedOrder(t *testing.T, managerID kernel.UUID) *order.Order {
	t.Helper()
	o := pendingOrder(t, kernel.NewUUID(), managerID)
	require.NoError(t, o.Confirm(placedAt))
	o.ClearDomainEvents()
	return o
}

func inProgressOrder(t *testing.T, managerID kernel.UUID, a *agent.Agent) *order.Order {
	t.Helper()
	o := confirmedOrder(t, managerID)
	require.NoError(t, o.AssignAgent(a.ID(), placedAt))
	o.ClearDomainEvents()
	return o
}

func availableAgent(t *testing.T, managerID kernel.UUID) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), managerID, "Ravi", "+91 98450 11111")
	require.NoError(t, err)
	return a
}

func busyAgent(t *testing.T, managerID kernel.UUID) *agent.Agent {
	t.Helper()
	a := availableAgent(t, managerID)
	require.NoError(t, a.Occupy())
	return a
}
