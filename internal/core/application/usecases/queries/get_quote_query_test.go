package queries_test

import (
	"testing"

	"fueldelivery/internal/adapters/out/postgres/catalogrepo"
	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/domain/model/catalog"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuoteQueryHandler(t *testing.T) {
	w := newWorld(t)
	s := w.station("Ring Road Fuels", "meera@example.com", "Petrol", "Diesel")
	customer := w.user("Asha", "asha@example.com", "$2a$10$hash")
	w.price("Petrol", "96.72")

	handler := queries.NewGetQuoteQueryHandler(w.db, catalogrepo.NewGormPriceCatalog(w.db))
	quote := func(stationID, fuelType, quantity string) (queries.GetQuoteQueryResponse, error) {
		query, err := queries.NewGetQuoteQuery(userPrincipal(t, customer), stationID, fuelType, quantity)
		require.NoError(t, err)
		return handler.Handle(w.ctx, query)
	}

	t.Run("should add the ten percent service fee", func(t *testing.T) {
		resp, err := quote(s.ID().String(), "petrol", "20")

		require.NoError(t, err)
		assert.Equal(t, "Ring Road Fuels", resp.StationName)
		assert.True(t, resp.UnitPrice.IsEqual(kernel.MustMoney("96.72")))
		assert.True(t, resp.Subtotal.IsEqual(kernel.MustMoney("1934.40")))
		assert.True(t, resp.ServiceFee.IsEqual(kernel.MustMoney("193.44")))
		assert.True(t, resp.Total.IsEqual(kernel.MustMoney("2127.84")))
	})

	t.Run("should refuse a fuel type the station does not sell", func(t *testing.T) {
		_, err := quote(s.ID().String(), "CNG", "20")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report a missing global price", func(t *testing.T) {
		_, err := quote(s.ID().String(), "Diesel", "20")

		require.ErrorIs(t, err, catalog.ErrPriceUnavailable)
	})

	t.Run("should refuse a zero quantity", func(t *testing.T) {
		_, err := quote(s.ID().String(), "Petrol", "0")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report an unknown station", func(t *testing.T) {
		_, err := quote(kernel.NewUUID().String(), "Petrol", "20")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewGetQuoteQuery(t *testing.T) {
	w := newWorld(t)
	s := w.station("Ring Road Fuels", "meera@example.com", "Petrol")
	customer := w.user("Asha", "asha@example.com", "$2a$10$hash")

	t.Run("should reject a manager", func(t *testing.T) {
		_, err := queries.NewGetQuoteQuery(managerPrincipal(t, s), s.ID().String(), "Petrol", "20")

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("should reject unparseable input", func(t *testing.T) {
		_, err := queries.NewGetQuoteQuery(userPrincipal(t, customer), "station-1", " ", "twenty")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
