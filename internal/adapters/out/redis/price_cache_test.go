package redis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fueldelivery/internal/core/domain/model/catalog"
	"fueldelivery/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type MockPriceCatalog struct {
	mock.Mock
}

func (m *MockPriceCatalog) CurrentPrice(ctx context.Context, fuelType kernel.FuelType) (kernel.Money, error) {
	args := m.Called(ctx, fuelType)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockPriceCatalog) SetPrice(ctx context.Context, price catalog.FuelPrice) error {
	return m.Called(ctx, price).Error(0)
}

func (m *MockPriceCatalog) List(ctx context.Context) ([]catalog.FuelPrice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.FuelPrice), args.Error(1)
}

func petrol(t *testing.T) kernel.FuelType {
	t.Helper()
	ft, err := kernel.NewFuelType("Petrol")
	require.NoError(t, err)
	return ft
}

func newCache(next *MockPriceCatalog, store *fakeStore) *CachedPriceCatalog {
	return newCachedPriceCatalog(next, store, 5*time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCachedPriceCatalog_CurrentPrice(t *testing.T) {
	t.Run("should read through once and then serve from cache", func(t *testing.T) {
		ctx := t.Context()
		next := new(MockPriceCatalog)
		store := newFakeStore()
		next.On("CurrentPrice", ctx, petrol(t)).Return(kernel.MustMoney("96.72"), nil).Once()
		cache := newCache(next, store)

		first, err := cache.CurrentPrice(ctx, petrol(t))
		require.NoError(t, err)
		second, err := cache.CurrentPrice(ctx, petrol(t))
		require.NoError(t, err)

		assert.True(t, first.IsEqual(kernel.MustMoney("96.72")))
		assert.True(t, second.IsEqual(first))
		assert.Equal(t, "96.72", store.values["fueldelivery:price:petrol"])
		assert.Equal(t, 5*time.Minute, store.ttls["fueldelivery:price:petrol"])
		next.AssertExpectations(t)
	})

	t.Run("should not cache a missing price", func(t *testing.T) {
		ctx := t.Context()
		next := new(MockPriceCatalog)
		store := newFakeStore()
		next.On("CurrentPrice", ctx, petrol(t)).
			Return(kernel.Money{}, catalog.NewPriceUnavailableError(petrol(t))).Twice()
		cache := newCache(next, store)

		_, err := cache.CurrentPrice(ctx, petrol(t))
		require.ErrorIs(t, err, catalog.ErrPriceUnavailable)
		_, err = cache.CurrentPrice(ctx, petrol(t))
		require.ErrorIs(t, err, catalog.ErrPriceUnavailable)

		assert.Empty(t, store.values)
		next.AssertExpectations(t)
	})

	t.Run("should fall back to the catalog when redis is down", func(t *testing.T) {
		ctx := t.Context()
		next := new(MockPriceCatalog)
		store := newFakeStore()
		store.getErr = errors.New("connection refused")
		store.setErr = errors.New("connection refused")
		next.On("CurrentPrice", ctx, petrol(t)).Return(kernel.MustMoney("96.72"), nil)

		price, err := newCache(next, store).CurrentPrice(ctx, petrol(t))

		require.NoError(t, err)
		assert.True(t, price.IsEqual(kernel.MustMoney("96.72")))
	})

	t.Run("should replace an unreadable cached value", func(t *testing.T) {
		ctx := t.Context()
		next := new(MockPriceCatalog)
		store := newFakeStore()
		store.values["fueldelivery:price:petrol"] = "garbage"
		next.On("CurrentPrice", ctx, petrol(t)).Return(kernel.MustMoney("99.10"), nil).Once()

		price, err := newCache(next, store).CurrentPrice(ctx, petrol(t))

		require.NoError(t, err)
		assert.True(t, price.IsEqual(kernel.MustMoney("99.10")))
		assert.Equal(t, "99.10", store.values["fueldelivery:price:petrol"])
	})
}

func TestCachedPriceCatalog_SetPrice(t *testing.T) {
	ctx := t.Context()
	next := new(MockPriceCatalog)
	store := newFakeStore()
	store.values["fueldelivery:price:petrol"] = "96.72"
	price, err := catalog.NewFuelPrice(petrol(t), kernel.MustMoney("101.00"))
	require.NoError(t, err)
	next.On("SetPrice", ctx, price).Return(nil).Once()

	require.NoError(t, newCache(next, store).SetPrice(ctx, price))

	assert.NotContains(t, store.values, "fueldelivery:price:petrol")
	next.AssertExpectations(t)
}

func TestCachedPriceCatalog_SetPriceFailureKeepsCache(t *testing.T) {
	ctx := t.Context()
	next := new(MockPriceCatalog)
	store := newFakeStore()
	store.values["fueldelivery:price:petrol"] = "96.72"
	price, err := catalog.NewFuelPrice(petrol(t), kernel.MustMoney("101.00"))
	require.NoError(t, err)
	next.On("SetPrice", ctx, price).Return(errors.New("db down"))

	err = newCache(next, store).SetPrice(ctx, price)

	require.EqualError(t, err, "db down")
	assert.Equal(t, "96.72", store.values["fueldelivery:price:petrol"])
}
