package queries_test

import (
	"context"
	"testing"
	"time"

	"fueldelivery/internal/adapters/out/postgres/agentrepo"
	"fueldelivery/internal/adapters/out/postgres/catalogrepo"
	"fueldelivery/internal/adapters/out/postgres/orderrepo"
	"fueldelivery/internal/adapters/out/postgres/sqlitetest"
	"fueldelivery/internal/adapters/out/postgres/stationrepo"
	"fueldelivery/internal/adapters/out/postgres/userrepo"
	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/catalog"
	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/core/domain/model/station"
	"fueldelivery/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// world seeds rows through the real repositories so queries read what the
// command side writes.
type world struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB
}

func newWorld(t *testing.T) *world {
	t.Helper()
	return &world{t: t, ctx: context.Background(), db: sqlitetest.Open(t)}
}

func (w *world) fuelType(name string) kernel.FuelType {
	w.t.Helper()
	ft, err := kernel.NewFuelType(name)
	require.NoError(w.t, err)
	return ft
}

func (w *world) station(name, email string, fuelTypes ...string) *station.Station {
	w.t.Helper()
	types := make([]kernel.FuelType, 0, len(fuelTypes))
	for _, ft := range fuelTypes {
		types = append(types, w.fuelType(ft))
	}
	s, err := station.NewStation(kernel.NewUUID(), station.Profile{
		ManagerName: "Meera",
		Email:       email,
		Mobile:      "9845011111",
		StationName: name,
		Address:     "1 Ring Road",
		FuelTypes:   types,
	}, "$2a$10$hash")
	require.NoError(w.t, err)
	require.NoError(w.t, stationrepo.NewGormStationRepository(w.db).Add(w.ctx, s))

	items, err := s.SeedInventory()
	require.NoError(w.t, err)
	require.NoError(w.t, stationrepo.NewGormInventoryRepository(w.db).AddAll(w.ctx, items))
	return s
}

func (w *world) user(name, email, passwordHash string) *user.User {
	w.t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), name, email, "9900000001", passwordHash)
	require.NoError(w.t, err)
	require.NoError(w.t, userrepo.NewGormUserRepository(w.db).Add(w.ctx, u))
	return u
}

func (w *world) agent(managerID kernel.UUID, name string, busy bool) *agent.Agent {
	w.t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), managerID, name, "9811100000")
	require.NoError(w.t, err)
	if busy {
		require.NoError(w.t, a.Occupy())
	}
	require.NoError(w.t, agentrepo.NewGormAgentRepository(w.db, noopTracker{}).Add(w.ctx, a))
	return a
}

func (w *world) price(fuelType, price string) {
	w.t.Helper()
	fp, err := catalog.NewFuelPrice(w.fuelType(fuelType), kernel.MustMoney(price))
	require.NoError(w.t, err)
	require.NoError(w.t, catalogrepo.NewGormPriceCatalog(w.db).SetPrice(w.ctx, fp))
}

// order places an order and runs it through transitions before storing it.
func (w *world) order(
	userID, managerID kernel.UUID,
	placedAt time.Time,
	transitions ...func(o *order.Order),
) *order.Order {
	w.t.Helper()
	q, err := order.NewQuote(kernel.MustMoney("96.72"), kernel.MustQuantity("20"))
	require.NoError(w.t, err)
	o, err := order.NewOrder(kernel.NewUUID(), userID, managerID, w.fuelType("Petrol"), q,
		order.CashOnDelivery, "12 Ring Road", placedAt)
	require.NoError(w.t, err)
	for _, transition := range transitions {
		transition(o)
	}
	require.NoError(w.t, orderrepo.NewGormOrderRepository(w.db, noopTracker{}).Add(w.ctx, o))
	return o
}

func confirmed(t *testing.T, at time.Time) func(o *order.Order) {
	return func(o *order.Order) {
		require.NoError(t, o.Confirm(at))
	}
}

func assigned(t *testing.T, agentID kernel.UUID, at time.Time) func(o *order.Order) {
	return func(o *order.Order) {
		require.NoError(t, o.AssignAgent(agentID, at))
	}
}

func delivered(t *testing.T, at time.Time) func(o *order.Order) {
	return func(o *order.Order) {
		_, err := o.Deliver(at)
		require.NoError(t, err)
	}
}

func userPrincipal(t *testing.T, u *user.User) identity.Principal {
	t.Helper()
	p, err := identity.NewUser(u.ID(), u.Name())
	require.NoError(t, err)
	return p
}

func managerPrincipal(t *testing.T, s *station.Station) identity.Principal {
	t.Helper()
	p, err := identity.NewManager(s.ID(), s.ManagerName())
	require.NoError(t, err)
	return p
}
