package queries

import (
	"context"
	"database/sql"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler returns a user's orders, newest first.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) (GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.manager_id,
			s.name,
			o.fuel_type,
			o.quantity,
			o.unit_price,
			o.subtotal,
			o.service_fee,
			o.total_amount,
			o.payment_method,
			o.address,
			o.status,
			a.name,
			a.contact,
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN stations s ON s.id = o.manager_id
		LEFT JOIN agents a ON a.id = o.agent_id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetUserOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]UserOrder, 0)
	for rows.Next() {
		var (
			resp                                 UserOrder
			id, stationID                        uuid.UUID
			stationName, agentName, agentContact sql.NullString
			quantity                             decimal.Decimal
			unitPrice, subtotal, fee, total      decimal.Decimal
			paymentMethod, status                int
		)

		if err = rows.Scan(
			&id,
			&stationID,
			&stationName,
			&resp.FuelType,
			&quantity,
			&unitPrice,
			&subtotal,
			&fee,
			&total,
			&paymentMethod,
			&resp.Address,
			&status,
			&agentName,
			&agentContact,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return GetUserOrdersQueryResponse{}, err
		}

		if resp.ID, err = toKernelUUID(id); err != nil {
			return GetUserOrdersQueryResponse{}, err
		}
		if resp.StationID, err = toKernelUUID(stationID); err != nil {
			return GetUserOrdersQueryResponse{}, err
		}
		if resp.Quantity, err = kernel.NewQuantity(quantity); err != nil {
			return GetUserOrdersQueryResponse{}, err
		}
		if err = scanMoney(
			moneyColumn{&resp.UnitPrice, unitPrice},
			moneyColumn{&resp.Subtotal, subtotal},
			moneyColumn{&resp.ServiceFee, fee},
			moneyColumn{&resp.TotalAmount, total},
		); err != nil {
			return GetUserOrdersQueryResponse{}, err
		}
		resp.StationName = stationName.String
		resp.AgentName = agentName.String
		resp.AgentContact = agentContact.String
		resp.PaymentMethod = order.PaymentMethod(paymentMethod)
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	return GetUserOrdersQueryResponse{Orders: orders}, nil
}

type moneyColumn struct {
	dst   *kernel.Money
	value decimal.Decimal
}

func scanMoney(columns ...moneyColumn) error {
	for _, c := range columns {
		m, err := kernel.NewMoney(c.value)
		if err != nil {
			return err
		}
		*c.dst = m
	}
	return nil
}
