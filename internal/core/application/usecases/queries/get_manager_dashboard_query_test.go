package queries_test

import (
	"testing"
	"time"

	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetManagerDashboardQueryHandler(t *testing.T) {
	w := newWorld(t)
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	s := w.station("Ring Road Fuels", "meera@example.com", "Petrol", "Diesel")
	other := w.station("Lake View Fuels", "ravi@example.com", "Petrol")
	customer := w.user("Asha", "asha@example.com", "$2a$10$hash")

	driving := w.agent(s.ID(), "Bala", true)
	w.agent(s.ID(), "Arun", false)
	w.agent(s.ID(), "Chitra", false)
	w.agent(other.ID(), "Dev", false)

	pending := w.order(customer.ID(), s.ID(), now.Add(-1*time.Hour))
	inProgress := w.order(customer.ID(), s.ID(), now.Add(-2*time.Hour),
		confirmed(t, now.Add(-2*time.Hour)),
		assigned(t, driving.ID(), now.Add(-90*time.Minute)),
	)
	courier := kernel.NewUUID()
	w.order(customer.ID(), s.ID(), now.Add(-8*time.Hour),
		confirmed(t, now.Add(-8*time.Hour)),
		assigned(t, courier, now.Add(-8*time.Hour)),
		delivered(t, now.Add(-7*time.Hour)),
	)
	w.order(customer.ID(), s.ID(), now.Add(-30*time.Hour),
		confirmed(t, now.Add(-30*time.Hour)),
		assigned(t, courier, now.Add(-30*time.Hour)),
		delivered(t, now.Add(-20*time.Hour)),
	)
	w.order(customer.ID(), other.ID(), now.Add(-1*time.Hour))

	query, err := queries.NewGetManagerDashboardQuery(managerPrincipal(t, s), now)
	require.NoError(t, err)

	dashboard, err := queries.NewGetManagerDashboardQueryHandler(w.db).Handle(w.ctx, query)
	require.NoError(t, err)

	t.Run("should list only the station's orders newest first", func(t *testing.T) {
		require.Len(t, dashboard.Orders, 4)
		assert.True(t, dashboard.Orders[0].ID.IsEqual(pending.ID()))
		assert.True(t, dashboard.Orders[1].ID.IsEqual(inProgress.ID()))
		assert.Equal(t, order.Delivered, dashboard.Orders[2].Status)
		assert.Equal(t, order.Delivered, dashboard.Orders[3].Status)
	})

	t.Run("should join customer and agent details", func(t *testing.T) {
		first := dashboard.Orders[0]
		assert.Equal(t, "Asha", first.UserName)
		assert.Equal(t, "9900000001", first.UserMobile)
		assert.Nil(t, first.AgentID)
		assert.Empty(t, first.AgentName)
		assert.True(t, first.TotalAmount.IsEqual(kernel.MustMoney("2127.84")))
		assert.Equal(t, order.CashOnDelivery, first.PaymentMethod)

		second := dashboard.Orders[1]
		assert.Equal(t, order.InProgress, second.Status)
		require.NotNil(t, second.AgentID)
		assert.True(t, second.AgentID.IsEqual(driving.ID()))
		assert.Equal(t, "Bala", second.AgentName)
	})

	t.Run("should list agents by name", func(t *testing.T) {
		require.Len(t, dashboard.Agents, 3)
		assert.Equal(t, "Arun", dashboard.Agents[0].Name)
		assert.Equal(t, "Bala", dashboard.Agents[1].Name)
		assert.Equal(t, agent.Busy, dashboard.Agents[1].Status)
		assert.Equal(t, "Chitra", dashboard.Agents[2].Name)
	})

	t.Run("should list the seeded inventory", func(t *testing.T) {
		require.Len(t, dashboard.Inventory, 2)
		assert.Equal(t, "Diesel", dashboard.Inventory[0].FuelType)
		assert.Equal(t, "Petrol", dashboard.Inventory[1].FuelType)
		assert.True(t, dashboard.Inventory[1].Quantity.IsEqual(kernel.MustQuantity("1000")))
		assert.True(t, dashboard.Inventory[1].Price.IsEqual(kernel.MustMoney("96.72")))
	})

	t.Run("should count stats for the current day", func(t *testing.T) {
		assert.Equal(t, queries.DashboardStats{
			Pending:         1,
			InProgress:      1,
			DeliveredToday:  1,
			AvailableAgents: 2,
		}, dashboard.Stats)
	})
}

func TestGetManagerDashboardQueryHandler_EmptyStation(t *testing.T) {
	w := newWorld(t)
	s := w.station("Ring Road Fuels", "meera@example.com", "Petrol")

	query, err := queries.NewGetManagerDashboardQuery(managerPrincipal(t, s), time.Now())
	require.NoError(t, err)

	dashboard, err := queries.NewGetManagerDashboardQueryHandler(w.db).Handle(w.ctx, query)

	require.NoError(t, err)
	assert.Empty(t, dashboard.Orders)
	assert.NotNil(t, dashboard.Orders)
	assert.Empty(t, dashboard.Agents)
	assert.Equal(t, queries.DashboardStats{}, dashboard.Stats)
}

func TestNewGetManagerDashboardQuery_RejectsUser(t *testing.T) {
	w := newWorld(t)
	customer := w.user("Asha", "asha@example.com", "$2a$10$hash")

	_, err := queries.NewGetManagerDashboardQuery(userPrincipal(t, customer), time.Now())

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestGetManagerDashboardQueryHandler_NotConstructed(t *testing.T) {
	_, err := queries.NewGetManagerDashboardQueryHandler(nil).Handle(t.Context(), queries.GetManagerDashboardQuery{})

	require.ErrorIs(t, err, queries.ErrGetManagerDashboardQueryIsNotConstructed)
}
