// Package stationrepo persists stations, their declared fuel types and the
// per-station inventory ledger.
package stationrepo

import (
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/station"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StationDTO is the manager account and its station in one row.
type StationDTO struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	ManagerName  string               `gorm:"type:varchar(255);not null"`
	Email        string               `gorm:"type:varchar(255);not null;uniqueIndex"`
	Mobile       string               `gorm:"type:varchar(50);not null"`
	PasswordHash string               `gorm:"type:varchar(255);not null"`
	Name         string               `gorm:"type:varchar(255);not null"`
	Address      string               `gorm:"type:varchar(500);not null"`
	FuelTypes    []StationFuelTypeDTO `gorm:"foreignKey:StationID;constraint:OnDelete:CASCADE"`
}

func (StationDTO) TableName() string {
	return "stations"
}

// StationFuelTypeDTO is one declared fuel type; Position keeps declaration order.
type StationFuelTypeDTO struct {
	StationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"type:int;primaryKey;autoIncrement:false"`
	FuelType  string    `gorm:"type:varchar(50);not null"`
}

func (StationFuelTypeDTO) TableName() string {
	return "station_fuel_types"
}

// InventoryDTO is one ledger row, unique per (manager, fuel type).
type InventoryDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ManagerID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_manager_fuel"`
	FuelType  string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_inventory_manager_fuel"`
	Quantity  decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (InventoryDTO) TableName() string {
	return "fuel_inventory"
}

func stationFromDomain(s *station.Station) StationDTO {
	id := s.ID().Bytes()
	fuelTypes := make([]StationFuelTypeDTO, 0, len(s.FuelTypes()))
	for i, ft := range s.FuelTypes() {
		fuelTypes = append(fuelTypes, StationFuelTypeDTO{
			StationID: id,
			Position:  i,
			FuelType:  ft.String(),
		})
	}

	return StationDTO{
		ID:           id,
		ManagerName:  s.ManagerName(),
		Email:        s.Email(),
		Mobile:       s.Mobile(),
		PasswordHash: s.PasswordHash(),
		Name:         s.Name(),
		Address:      s.Address(),
		FuelTypes:    fuelTypes,
	}
}

func stationToDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fuelTypes := make([]kernel.FuelType, 0, len(dto.FuelTypes))
	for _, ftDTO := range dto.FuelTypes {
		ft, ftErr := kernel.NewFuelType(ftDTO.FuelType)
		if ftErr != nil {
			return nil, ftErr
		}
		fuelTypes = append(fuelTypes, ft)
	}

	return station.NewStation(id, station.Profile{
		ManagerName: dto.ManagerName,
		Email:       dto.Email,
		Mobile:      dto.Mobile,
		StationName: dto.Name,
		Address:     dto.Address,
		FuelTypes:   fuelTypes,
	}, dto.PasswordHash)
}

func inventoryFromDomain(item *station.InventoryItem) InventoryDTO {
	return InventoryDTO{
		ID:        item.ID().Bytes(),
		ManagerID: item.ManagerID().Bytes(),
		FuelType:  item.FuelType().String(),
		Quantity:  item.Quantity().Decimal(),
		Price:     item.Price().Amount(),
	}
}

func inventoryToDomain(dto InventoryDTO) (*station.InventoryItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	managerID, err := kernel.UUIDFromBytes(dto.ManagerID[:])
	if err != nil {
		return nil, err
	}
	fuelType, err := kernel.NewFuelType(dto.FuelType)
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return station.NewInventoryItem(id, managerID, fuelType, quantity, price)
}
