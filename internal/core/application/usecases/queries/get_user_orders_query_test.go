package queries_test

import (
	"testing"
	"time"

	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserOrdersQueryHandler(t *testing.T) {
	w := newWorld(t)
	placedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	s := w.station("Ring Road Fuels", "meera@example.com", "Petrol")
	customer := w.user("Asha", "asha@example.com", "$2a$10$hash")
	neighbour := w.user("Kiran", "kiran@example.com", "$2a$10$hash")
	driving := w.agent(s.ID(), "Bala", true)

	older := w.order(customer.ID(), s.ID(), placedAt)
	newer := w.order(customer.ID(), s.ID(), placedAt.Add(time.Hour),
		confirmed(t, placedAt.Add(time.Hour)),
		assigned(t, driving.ID(), placedAt.Add(2*time.Hour)),
	)
	w.order(neighbour.ID(), s.ID(), placedAt.Add(3*time.Hour))

	query, err := queries.NewGetUserOrdersQuery(userPrincipal(t, customer))
	require.NoError(t, err)

	resp, err := queries.NewGetUserOrdersQueryHandler(w.db).Handle(w.ctx, query)
	require.NoError(t, err)

	require.Len(t, resp.Orders, 2)

	first := resp.Orders[0]
	assert.True(t, first.ID.IsEqual(newer.ID()))
	assert.Equal(t, order.InProgress, first.Status)
	assert.Equal(t, "Bala", first.AgentName)
	assert.Equal(t, "9811100000", first.AgentContact)
	assert.True(t, first.UpdatedAt.Equal(placedAt.Add(2*time.Hour)))

	second := resp.Orders[1]
	assert.True(t, second.ID.IsEqual(older.ID()))
	assert.Equal(t, order.Pending, second.Status)
	assert.True(t, second.StationID.IsEqual(s.ID()))
	assert.Equal(t, "Ring Road Fuels", second.StationName)
	assert.Equal(t, "Petrol", second.FuelType)
	assert.Empty(t, second.AgentName)
	assert.True(t, second.Quantity.IsEqual(kernel.MustQuantity("20")))
	assert.True(t, second.UnitPrice.IsEqual(kernel.MustMoney("96.72")))
	assert.True(t, second.Subtotal.IsEqual(kernel.MustMoney("1934.40")))
	assert.True(t, second.ServiceFee.IsEqual(kernel.MustMoney("193.44")))
	assert.True(t, second.TotalAmount.IsEqual(kernel.MustMoney("2127.84")))
	assert.Equal(t, "12 Ring Road", second.Address)
	assert.True(t, second.CreatedAt.Equal(placedAt))
}

func TestGetUserOrdersQueryHandler_NoOrders(t *testing.T) {
	w := newWorld(t)
	customer := w.user("Asha", "asha@example.com", "$2a$10$hash")

	query, err := queries.NewGetUserOrdersQuery(userPrincipal(t, customer))
	require.NoError(t, err)

	resp, err := queries.NewGetUserOrdersQueryHandler(w.db).Handle(w.ctx, query)

	require.NoError(t, err)
	assert.NotNil(t, resp.Orders)
	assert.Empty(t, resp.Orders)
}

func TestNewGetUserOrdersQuery_RejectsManager(t *testing.T) {
	w := newWorld(t)
	s := w.station("Ring Road Fuels", "meera@example.com", "Petrol")

	_, err := queries.NewGetUserOrdersQuery(managerPrincipal(t, s))

	require.ErrorIs(t, err, errs.ErrForbidden)
}
