package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	postgres_adapter "fueldelivery/internal/adapters/out/postgres"
	"fueldelivery/internal/core/application/usecases/commands"
	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type uowFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.factory.Create()
}

// ConcurrencyIntegrationTestSuite checks row locking and optimistic versions
// against a real PostgreSQL, where SELECT ... FOR UPDATE is honoured.
type ConcurrencyIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   uowFactory
}

func TestConcurrencyIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL container tests in short mode")
	}
	suite.Run(t, new(ConcurrencyIntegrationTestSuite))
}

func (suite *ConcurrencyIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = uowFactory{factory: postgres_adapter.NewGormUnitOfWorkFactory(db, nil, logger)}
}

func (suite *ConcurrencyIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, agents").Error
	suite.Require().NoError(err)
}

func (suite *ConcurrencyIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ConcurrencyIntegrationTestSuite) seedAgent(managerID kernel.UUID, busy bool) *agent.Agent {
	ctx := context.Background()
	a, err := agent.NewAgent(kernel.NewUUID(), managerID, "Ravi", "9000000003")
	suite.Require().NoError(err)
	if busy {
		suite.Require().NoError(a.Occupy())
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AgentRepository().Add(ctx, a))
	suite.Require().NoError(uow.Commit(ctx))
	return a
}

func (suite *ConcurrencyIntegrationTestSuite) seedConfirmedOrder(managerID kernel.UUID) *order.Order {
	ctx := context.Background()
	o, err := newOrder(managerID)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Confirm(placedAt))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

// run starts every fn at the same moment and collects their errors.
func run(fns ...func() error) []error {
	results := make([]error, len(fns))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = fn()
		}()
	}
	close(start)
	wg.Wait()
	return results
}

func (suite *ConcurrencyIntegrationTestSuite) TestAssignAgent_OnlyOneOrderGetsTheAgent() {
	ctx := context.Background()
	managerID := kernel.NewUUID()
	principal, err := identity.NewManager(managerID, "Meera")
	suite.Require().NoError(err)

	a := suite.seedAgent(managerID, false)
	first := suite.seedConfirmedOrder(managerID)
	second := suite.seedConfirmedOrder(managerID)

	handler := commands.NewAssignAgentCommandHandler(suite.factory)
	assign := func(orderID kernel.UUID) func() error {
		return func() error {
			cmd, err := commands.NewAssignAgentCommand(principal, orderID, a.ID())
			if err != nil {
				return err
			}
			return handler.Handle(ctx, cmd)
		}
	}

	results := run(assign(first.ID()), assign(second.ID()))

	var failures []error
	for _, err := range results {
		if err != nil {
			failures = append(failures, err)
		}
	}
	suite.Require().Len(failures, 1, "exactly one assignment must win")
	suite.Require().ErrorIs(failures[0], agent.ErrAgentUnavailable)

	stored, err := suite.factory.Create().AgentRepository().Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(agent.Busy, stored.Status())

	inProgress, err := suite.factory.Create().OrderRepository().ListInProgressByManager(ctx, managerID)
	suite.Require().NoError(err)
	suite.Require().Len(inProgress, 1)
	suite.True(inProgress[0].AgentID().IsEqual(a.ID()))
}

func (suite *ConcurrencyIntegrationTestSuite) TestDeliverAndReject_OnlyOneTransitionWins() {
	ctx := context.Background()
	managerID := kernel.NewUUID()
	principal, err := identity.NewManager(managerID, "Meera")
	suite.Require().NoError(err)

	a := suite.seedAgent(managerID, false)
	o := suite.seedConfirmedOrder(managerID)

	assign, err := commands.NewAssignAgentCommand(principal, o.ID(), a.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewAssignAgentCommandHandler(suite.factory).Handle(ctx, assign))

	deliver, err := commands.NewDeliverOrderCommand(principal, o.ID())
	suite.Require().NoError(err)
	reject, err := commands.NewRejectOrderCommand(principal, o.ID())
	suite.Require().NoError(err)

	results := run(
		func() error { return commands.NewDeliverOrderCommandHandler(suite.factory).Handle(ctx, deliver) },
		func() error { return commands.NewRejectOrderCommandHandler(suite.factory).Handle(ctx, reject) },
	)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrInvalidTransition)
	}
	suite.Equal(1, succeeded)

	stored, err := suite.factory.Create().AgentRepository().Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(agent.Available, stored.Status(), "the agent is released by whichever transition won")
}

func (suite *ConcurrencyIntegrationTestSuite) TestReconcileAgents_ReleasesOnlyStaleAgents() {
	ctx := context.Background()
	managerID := kernel.NewUUID()
	principal, err := identity.NewManager(managerID, "Meera")
	suite.Require().NoError(err)

	stale := suite.seedAgent(managerID, true)
	working := suite.seedAgent(managerID, false)
	o := suite.seedConfirmedOrder(managerID)

	assign, err := commands.NewAssignAgentCommand(principal, o.ID(), working.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewAssignAgentCommandHandler(suite.factory).Handle(ctx, assign))

	sweep, err := commands.NewReconcileAgentsCommand(nil)
	suite.Require().NoError(err)
	handler := commands.NewReconcileAgentsCommandHandler(suite.factory)

	// Two sweeps racing each other release the stale agent once.
	var released []int
	var mu sync.Mutex
	results := run(
		func() error {
			n, err := handler.Handle(ctx, sweep)
			mu.Lock()
			released = append(released, n)
			mu.Unlock()
			return err
		},
		func() error {
			n, err := handler.Handle(ctx, sweep)
			mu.Lock()
			released = append(released, n)
			mu.Unlock()
			return err
		},
	)
	for _, err := range results {
		suite.Require().NoError(err)
	}
	suite.ElementsMatch([]int{0, 1}, released)

	got, err := suite.factory.Create().AgentRepository().Get(ctx, stale.ID())
	suite.Require().NoError(err)
	suite.Equal(agent.Available, got.Status())

	got, err = suite.factory.Create().AgentRepository().Get(ctx, working.ID())
	suite.Require().NoError(err)
	suite.Equal(agent.Busy, got.Status())
}

func (suite *ConcurrencyIntegrationTestSuite) TestReconcileAgents_NeverDemotesAnAgentBeingAssigned() {
	ctx := context.Background()
	managerID := kernel.NewUUID()
	principal, err := identity.NewManager(managerID, "Meera")
	suite.Require().NoError(err)

	assignHandler := commands.NewAssignAgentCommandHandler(suite.factory)
	sweepHandler := commands.NewReconcileAgentsCommandHandler(suite.factory)
	sweep, err := commands.NewReconcileAgentsCommand(&managerID)
	suite.Require().NoError(err)

	for round := 0; round < 5; round++ {
		stale := suite.seedAgent(managerID, true)
		target := suite.seedAgent(managerID, false)
		o := suite.seedConfirmedOrder(managerID)

		assign, err := commands.NewAssignAgentCommand(principal, o.ID(), target.ID())
		suite.Require().NoError(err)

		var released int
		results := run(
			func() error { return assignHandler.Handle(ctx, assign) },
			func() error {
				n, err := sweepHandler.Handle(ctx, sweep)
				released = n
				return err
			},
		)
		suite.Require().NoError(results[0], "round %d", round)
		suite.Require().NoError(results[1], "round %d", round)
		suite.Equal(1, released, "round %d", round)

		got, err := suite.factory.Create().AgentRepository().Get(ctx, target.ID())
		suite.Require().NoError(err)
		suite.Equal(agent.Busy, got.Status(), "round %d", round)

		got, err = suite.factory.Create().AgentRepository().Get(ctx, stale.ID())
		suite.Require().NoError(err)
		suite.Equal(agent.Available, got.Status(), "round %d", round)

		stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
		suite.Require().NoError(err)
		suite.Equal(order.InProgress, stored.Status(), "round %d", round)
		suite.Require().NotNil(stored.AgentID())
		suite.True(stored.AgentID().IsEqual(target.ID()), "round %d", round)
	}
}
