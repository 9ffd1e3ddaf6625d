package queries

import (
	"context"
	"database/sql"
	"time"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetManagerDashboardQueryHandler reads a manager's orders, agents and inventory.
// It does not repair agent drift itself; the HTTP boundary runs the reconciliation
// sweep before it so the agent list is accurate.
//
// Example:
//
//	handler := NewGetManagerDashboardQueryHandler(db)
//	query, _ := NewGetManagerDashboardQuery(principal, time.Now())
//	dashboard, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d pending, %d agents free\n",
//	    dashboard.Stats.Pending, dashboard.Stats.AvailableAgents)
type GetManagerDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetManagerDashboardQueryHandler(db *gorm.DB) GetManagerDashboardQueryHandler {
	return GetManagerDashboardQueryHandler{db: db}
}

// Handle returns orders newest first, agents by name and inventory by fuel type.
func (h GetManagerDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetManagerDashboardQuery,
) (GetManagerDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetManagerDashboardQueryResponse{}, err
	}

	managerID := query.ManagerID().Bytes()

	orders, err := h.orders(ctx, managerID)
	if err != nil {
		return GetManagerDashboardQueryResponse{}, err
	}

	agents, err := h.agents(ctx, managerID)
	if err != nil {
		return GetManagerDashboardQueryResponse{}, err
	}

	inventory, err := h.inventory(ctx, managerID)
	if err != nil {
		return GetManagerDashboardQueryResponse{}, err
	}

	return GetManagerDashboardQueryResponse{
		Orders:    orders,
		Agents:    agents,
		Inventory: inventory,
		Stats:     dashboardStats(orders, agents, query.Now()),
	}, nil
}

func (h GetManagerDashboardQueryHandler) orders(ctx context.Context, managerID uuid.UUID) ([]DashboardOrder, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.name,
			u.mobile,
			o.fuel_type,
			o.quantity,
			o.total_amount,
			o.payment_method,
			o.address,
			o.status,
			o.agent_id,
			a.name,
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		LEFT JOIN agents a ON a.id = o.agent_id
		WHERE o.manager_id = ?
		ORDER BY o.created_at DESC, o.id
	`, managerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]DashboardOrder, 0)
	for rows.Next() {
		var (
			resp                  DashboardOrder
			id                    uuid.UUID
			agentID               uuid.NullUUID
			userName, userMobile  sql.NullString
			agentName             sql.NullString
			quantity, totalAmount decimal.Decimal
			paymentMethod, status int
		)

		if err = rows.Scan(
			&id,
			&userName,
			&userMobile,
			&resp.FuelType,
			&quantity,
			&totalAmount,
			&paymentMethod,
			&resp.Address,
			&status,
			&agentID,
			&agentName,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if resp.AgentID, err = toKernelUUIDPtr(agentID); err != nil {
			return nil, err
		}
		if resp.Quantity, err = kernel.NewQuantity(quantity); err != nil {
			return nil, err
		}
		if resp.TotalAmount, err = kernel.NewMoney(totalAmount); err != nil {
			return nil, err
		}
		resp.UserName = userName.String
		resp.UserMobile = userMobile.String
		resp.AgentName = agentName.String
		resp.PaymentMethod = order.PaymentMethod(paymentMethod)
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetManagerDashboardQueryHandler) agents(ctx context.Context, managerID uuid.UUID) ([]DashboardAgent, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			contact,
			status
		FROM agents
		WHERE manager_id = ?
		ORDER BY name, id
	`, managerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]DashboardAgent, 0)
	for rows.Next() {
		var (
			resp   DashboardAgent
			id     uuid.UUID
			status int
		)
		if err = rows.Scan(&id, &resp.Name, &resp.Contact, &status); err != nil {
			return nil, err
		}
		if resp.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		resp.Status = agent.Status(status)
		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}

func (h GetManagerDashboardQueryHandler) inventory(
	ctx context.Context,
	managerID uuid.UUID,
) ([]DashboardInventoryItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fuel_type,
			quantity,
			price
		FROM fuel_inventory
		WHERE manager_id = ?
		ORDER BY fuel_type
	`, managerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DashboardInventoryItem, 0)
	for rows.Next() {
		var (
			resp            DashboardInventoryItem
			id              uuid.UUID
			quantity, price decimal.Decimal
		)
		if err = rows.Scan(&id, &resp.FuelType, &quantity, &price); err != nil {
			return nil, err
		}
		if resp.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if resp.Quantity, err = kernel.NewQuantity(quantity); err != nil {
			return nil, err
		}
		if resp.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// dashboardStats counts "delivered today" against the calendar day of now in now's location.
func dashboardStats(orders []DashboardOrder, agents []DashboardAgent, now time.Time) DashboardStats {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var stats DashboardStats
	for _, o := range orders {
		switch o.Status {
		case order.Pending:
			stats.Pending++
		case order.InProgress:
			stats.InProgress++
		case order.Delivered:
			updated := o.UpdatedAt.In(now.Location())
			if !updated.Before(dayStart) && updated.Before(dayEnd) {
				stats.DeliveredToday++
			}
		case order.Unknown, order.Confirmed, order.Rejected, order.Cancelled:
		}
	}
	for _, a := range agents {
		if a.Status == agent.Available {
			stats.AvailableAgents++
		}
	}
	return stats
}
