// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for lookups by owning manager, by user and by assigned agent.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ManagerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_manager_status"`
	AgentID       *uuid.UUID      `gorm:"type:uuid;index"`
	FuelType      string          `gorm:"type:varchar(50);not null"`
	Quantity      decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ServiceFee    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentMethod int             `gorm:"type:smallint;not null"`
	Address       string          `gorm:"type:varchar(500);not null"`
	Status        int             `gorm:"type:smallint;not null;index:idx_orders_manager_status"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version       int             `gorm:"type:int;not null;default:0"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := o.AgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	q := o.Quote()
	return OrderDTO{
		ID:            o.ID().Bytes(),
		UserID:        o.UserID().Bytes(),
		ManagerID:     o.ManagerID().Bytes(),
		AgentID:       agentID,
		FuelType:      o.FuelType().String(),
		Quantity:      q.Quantity().Decimal(),
		UnitPrice:     q.UnitPrice().Amount(),
		Subtotal:      q.Subtotal().Amount(),
		ServiceFee:    q.ServiceFee().Amount(),
		TotalAmount:   q.Total().Amount(),
		PaymentMethod: int(o.PaymentMethod()),
		Address:       o.Address(),
		Status:        int(o.Status()),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Version:       o.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	managerID, err := kernel.UUIDFromBytes(dto.ManagerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	fuelType, err := kernel.NewFuelType(dto.FuelType)
	if err != nil {
		return nil, err
	}

	quote, err := quoteFromDTO(dto)
	if err != nil {
		return nil, err
	}

	return order.Restore(order.Snapshot{
		ID:            id,
		UserID:        userID,
		ManagerID:     managerID,
		AgentID:       agentID,
		FuelType:      fuelType,
		PaymentMethod: order.PaymentMethod(dto.PaymentMethod),
		Quote:         quote,
		Address:       dto.Address,
		Status:        order.Status(dto.Status),
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		Version:       dto.Version,
	})
}

func quoteFromDTO(dto OrderDTO) (order.Quote, error) {
	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.Quote{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Quote{}, err
	}
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Quote{}, err
	}
	fee, err := kernel.NewMoney(dto.ServiceFee)
	if err != nil {
		return order.Quote{}, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return order.Quote{}, err
	}
	return order.RestoreQuote(unitPrice, quantity, subtotal, fee, total)
}
