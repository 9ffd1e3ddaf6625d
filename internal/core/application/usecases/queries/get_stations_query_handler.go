package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetStationsQueryHandler struct {
	db *gorm.DB
}

func NewGetStationsQueryHandler(db *gorm.DB) GetStationsQueryHandler {
	return GetStationsQueryHandler{db: db}
}

// Handle returns stations ordered by name with their fuel types in declaration order.
func (h GetStationsQueryHandler) Handle(ctx context.Context, query GetStationsQuery) (GetStationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStationsQueryResponse{}, err
	}

	fuelTypes, err := h.fuelTypes(ctx)
	if err != nil {
		return GetStationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address
		FROM stations
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return GetStationsQueryResponse{}, err
	}
	defer rows.Close()

	stations := make([]StationResponse, 0)
	for rows.Next() {
		var (
			resp StationResponse
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &resp.Name, &resp.Address); err != nil {
			return GetStationsQueryResponse{}, err
		}
		if resp.ID, err = toKernelUUID(id); err != nil {
			return GetStationsQueryResponse{}, err
		}
		resp.FuelTypes = fuelTypes[id]
		if resp.FuelTypes == nil {
			resp.FuelTypes = []string{}
		}
		stations = append(stations, resp)
	}

	if err = rows.Err(); err != nil {
		return GetStationsQueryResponse{}, err
	}

	return GetStationsQueryResponse{Stations: stations}, nil
}

func (h GetStationsQueryHandler) fuelTypes(ctx context.Context) (map[uuid.UUID][]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			station_id,
			fuel_type
		FROM station_fuel_types
		ORDER BY station_id, position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byStation := make(map[uuid.UUID][]string)
	for rows.Next() {
		var (
			stationID uuid.UUID
			fuelType  string
		)
		if err = rows.Scan(&stationID, &fuelType); err != nil {
			return nil, err
		}
		byStation[stationID] = append(byStation[stationID], fuelType)
	}

	return byStation, rows.Err()
}
