package agentrepo_test

import (
	"context"
	"testing"

	"fueldelivery/internal/adapters/out/postgres/agentrepo"
	"fueldelivery/internal/adapters/out/postgres/sqlitetest"
	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

func newRepository(t *testing.T) *agentrepo.GormAgentRepository {
	t.Helper()
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	return agentrepo.NewGormAgentRepository(sqlitetest.Open(t), tracker)
}

func addAgent(t *testing.T, repo *agentrepo.GormAgentRepository, managerID kernel.UUID, name string) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), managerID, name, "555-0100")
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), a))
	return a
}

func TestGormAgentRepository_AddGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	managerID := kernel.NewUUID()
	a := addAgent(t, repo, managerID, "Ravi")

	got, err := repo.Get(ctx, a.ID())

	require.NoError(t, err)
	assert.True(t, got.IsEqual(a))
	assert.True(t, got.ManagerID().IsEqual(managerID))
	assert.Equal(t, "Ravi", got.Name())
	assert.Equal(t, "555-0100", got.Contact())
	assert.Equal(t, agent.Available, got.Status())

	_, err = repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormAgentRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	a := addAgent(t, repo, kernel.NewUUID(), "Ravi")

	t.Run("should persist status and bump version", func(t *testing.T) {
		loaded, err := repo.Get(ctx, a.ID())
		require.NoError(t, err)
		require.NoError(t, loaded.Occupy())

		require.NoError(t, repo.Update(ctx, loaded))

		got, err := repo.Get(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, agent.Busy, got.Status())
		assert.Equal(t, 1, got.Version())
	})

	t.Run("should refuse a stale copy", func(t *testing.T) {
		first, err := repo.Get(ctx, a.ID())
		require.NoError(t, err)
		second, err := repo.Get(ctx, a.ID())
		require.NoError(t, err)

		first.Release()
		require.NoError(t, repo.Update(ctx, first))

		second.Release()
		err = repo.Update(ctx, second)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestGormAgentRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	managerID := kernel.NewUUID()

	addAgent(t, repo, managerID, "Zoya")
	busy := addAgent(t, repo, managerID, "Arun")
	loaded, err := repo.Get(ctx, busy.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.Occupy())
	require.NoError(t, repo.Update(ctx, loaded))

	elsewhere := addAgent(t, repo, kernel.NewUUID(), "Kiran")
	loaded, err = repo.Get(ctx, elsewhere.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.Occupy())
	require.NoError(t, repo.Update(ctx, loaded))

	roster, err := repo.ListByManager(ctx, managerID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Arun", roster[0].Name())
	assert.Equal(t, "Zoya", roster[1].Name())

	busyByManager, err := repo.ListBusyByManager(ctx, managerID)
	require.NoError(t, err)
	require.Len(t, busyByManager, 1)
	assert.True(t, busyByManager[0].IsEqual(busy))

	allBusy, err := repo.ListBusy(ctx)
	require.NoError(t, err)
	assert.Len(t, allBusy, 2)
}

func TestGormAgentRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	a := addAgent(t, repo, kernel.NewUUID(), "Ravi")

	require.NoError(t, repo.Delete(ctx, a.ID()))

	_, err := repo.Get(ctx, a.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, repo.Delete(ctx, a.ID()), errs.ErrObjectNotFound)
}
