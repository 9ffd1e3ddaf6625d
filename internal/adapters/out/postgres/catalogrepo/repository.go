// Package catalogrepo stores the global fuel price list.
package catalogrepo

import (
	"context"
	"errors"
	"strings"

	"fueldelivery/internal/core/domain/model/catalog"
	"fueldelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FuelPriceDTO is keyed by the lower-cased fuel type so that lookups ignore case.
type FuelPriceDTO struct {
	FuelKey  string          `gorm:"type:varchar(50);primaryKey"`
	FuelType string          `gorm:"type:varchar(50);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (FuelPriceDTO) TableName() string {
	return "global_fuel_prices"
}

// GormPriceCatalog implements ports.PriceCatalog on the global_fuel_prices table.
type GormPriceCatalog struct {
	db *gorm.DB
}

func NewGormPriceCatalog(db *gorm.DB) *GormPriceCatalog {
	return &GormPriceCatalog{db: db}
}

func (c *GormPriceCatalog) CurrentPrice(ctx context.Context, fuelType kernel.FuelType) (kernel.Money, error) {
	if err := fuelType.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var dto FuelPriceDTO
	if err := c.db.WithContext(ctx).First(&dto, "fuel_key = ?", key(fuelType)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Money{}, catalog.NewPriceUnavailableError(fuelType)
		}
		return kernel.Money{}, err
	}
	return kernel.NewMoney(dto.Price)
}

// SetPrice upserts the price of a fuel type.
func (c *GormPriceCatalog) SetPrice(ctx context.Context, price catalog.FuelPrice) error {
	dto := FuelPriceDTO{
		FuelKey:  key(price.FuelType),
		FuelType: price.FuelType.String(),
		Price:    price.Price.Amount(),
	}
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fuel_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"fuel_type", "price"}),
		}).
		Create(&dto).Error
}

func (c *GormPriceCatalog) List(ctx context.Context) ([]catalog.FuelPrice, error) {
	var dtos []FuelPriceDTO
	if err := c.db.WithContext(ctx).Order("fuel_key").Find(&dtos).Error; err != nil {
		return nil, err
	}

	prices := make([]catalog.FuelPrice, 0, len(dtos))
	for _, dto := range dtos {
		fuelType, err := kernel.NewFuelType(dto.FuelType)
		if err != nil {
			return nil, err
		}
		money, err := kernel.NewMoney(dto.Price)
		if err != nil {
			return nil, err
		}
		prices = append(prices, catalog.FuelPrice{FuelType: fuelType, Price: money})
	}
	return prices, nil
}

func key(fuelType kernel.FuelType) string {
	return strings.ToLower(fuelType.String())
}
