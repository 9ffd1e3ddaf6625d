package stationrepo

import (
	"context"
	"errors"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/station"
	"fueldelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AddAll(ctx context.Context, items []*station.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]InventoryDTO, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, inventoryFromDomain(item))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Update overwrites quantity and price of an existing row.
func (r *GormInventoryRepository) Update(ctx context.Context, item *station.InventoryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := inventoryFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&InventoryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"quantity": dto.Quantity,
			"price":    dto.Price,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventory", item.ID().String())
	}
	return nil
}

func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*station.InventoryItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", id.String())
		}
		return nil, err
	}
	return inventoryToDomain(dto)
}

func (r *GormInventoryRepository) ListByManager(ctx context.Context, managerID kernel.UUID) ([]*station.InventoryItem, error) {
	var dtos []InventoryDTO
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID.Bytes()).
		Order("fuel_type").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*station.InventoryItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := inventoryToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
