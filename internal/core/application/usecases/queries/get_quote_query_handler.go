package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/core/ports"
	"fueldelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetQuoteQueryHandler computes the same breakdown PlaceOrder freezes on the order.
// The price may change between quote and placement; placement re-prices.
type GetQuoteQueryHandler struct {
	db     *gorm.DB
	prices ports.PriceCatalog
}

func NewGetQuoteQueryHandler(db *gorm.DB, prices ports.PriceCatalog) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{db: db, prices: prices}
}

// Handle fails with errs.ErrObjectNotFound for an unknown station,
// errs.ErrValueIsInvalid when the station does not sell the fuel type or the
// quantity is not positive, and catalog.ErrPriceUnavailable without a global price.
func (h GetQuoteQueryHandler) Handle(ctx context.Context, query GetQuoteQuery) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	stationID := query.StationID()

	var stationName string
	err := h.db.WithContext(ctx).Raw(`
		SELECT name
		FROM stations
		WHERE id = ?
	`, stationID.Bytes()).Row().Scan(&stationName)
	if errors.Is(err, sql.ErrNoRows) {
		return GetQuoteQueryResponse{}, errs.NewObjectNotFoundError("station", stationID.String())
	}
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	var offered int64
	if err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM station_fuel_types
		WHERE station_id = ? AND LOWER(fuel_type) = LOWER(?)
	`, stationID.Bytes(), query.FuelType().String()).Row().Scan(&offered); err != nil {
		return GetQuoteQueryResponse{}, err
	}
	if offered == 0 {
		return GetQuoteQueryResponse{}, errs.NewValueIsInvalidErrorWithCause(
			"fuelType",
			fmt.Errorf("%s is not sold at station %s", query.FuelType(), stationName),
		)
	}

	price, err := h.prices.CurrentPrice(ctx, query.FuelType())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	quote, err := order.NewQuote(price, query.Quantity())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	return GetQuoteQueryResponse{
		StationID:   stationID,
		StationName: stationName,
		FuelType:    query.FuelType().String(),
		Quantity:    quote.Quantity(),
		UnitPrice:   quote.UnitPrice(),
		Subtotal:    quote.Subtotal(),
		ServiceFee:  quote.ServiceFee(),
		Total:       quote.Total(),
	}, nil
}
