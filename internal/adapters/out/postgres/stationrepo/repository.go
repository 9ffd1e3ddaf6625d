package stationrepo

import (
	"context"
	"errors"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/station"
	"fueldelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormStationRepository struct {
	db *gorm.DB
}

func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// Add stores the station with its fuel types in one statement.
func (r *GormStationRepository) Add(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := stationFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "station", id.String(), "id = ?", id.Bytes())
}

func (r *GormStationRepository) GetByEmail(ctx context.Context, email string) (*station.Station, error) {
	normalized, err := kernel.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return r.first(ctx, "station", normalized, "email = ?", normalized)
}

func (r *GormStationRepository) first(ctx context.Context, param string, key any, query string, args ...any) (*station.Station, error) {
	var dto StationDTO
	err := r.db.WithContext(ctx).
		Preload("FuelTypes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return stationToDomain(dto)
}
