package queries

import (
	"context"
	"database/sql"
	"errors"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetStationFuelOptionsQueryHandler struct {
	db *gorm.DB
}

func NewGetStationFuelOptionsQueryHandler(db *gorm.DB) GetStationFuelOptionsQueryHandler {
	return GetStationFuelOptionsQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown station.
func (h GetStationFuelOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetStationFuelOptionsQuery,
) (GetStationFuelOptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStationFuelOptionsQueryResponse{}, err
	}

	stationID := query.StationID()
	resp := GetStationFuelOptionsQueryResponse{StationID: stationID}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			address
		FROM stations
		WHERE id = ?
	`, stationID.Bytes()).Row().Scan(&resp.Name, &resp.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return GetStationFuelOptionsQueryResponse{}, errs.NewObjectNotFoundError("station", stationID.String())
	}
	if err != nil {
		return GetStationFuelOptionsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.fuel_type,
			i.quantity,
			i.price,
			g.price
		FROM fuel_inventory i
		LEFT JOIN global_fuel_prices g ON g.fuel_key = LOWER(i.fuel_type)
		WHERE i.manager_id = ?
		ORDER BY i.fuel_type
	`, stationID.Bytes()).Rows()
	if err != nil {
		return GetStationFuelOptionsQueryResponse{}, err
	}
	defer rows.Close()

	resp.Options = make([]FuelOption, 0)
	for rows.Next() {
		var (
			option          FuelOption
			quantity, price decimal.Decimal
			globalPrice     decimal.NullDecimal
		)
		if err = rows.Scan(&option.FuelType, &quantity, &price, &globalPrice); err != nil {
			return GetStationFuelOptionsQueryResponse{}, err
		}
		if option.Available, err = kernel.NewQuantity(quantity); err != nil {
			return GetStationFuelOptionsQueryResponse{}, err
		}
		if option.InventoryPrice, err = kernel.NewMoney(price); err != nil {
			return GetStationFuelOptionsQueryResponse{}, err
		}
		if globalPrice.Valid {
			m, moneyErr := kernel.NewMoney(globalPrice.Decimal)
			if moneyErr != nil {
				return GetStationFuelOptionsQueryResponse{}, moneyErr
			}
			option.GlobalPrice = &m
		}
		resp.Options = append(resp.Options, option)
	}

	if err = rows.Err(); err != nil {
		return GetStationFuelOptionsQueryResponse{}, err
	}

	return resp, nil
}
