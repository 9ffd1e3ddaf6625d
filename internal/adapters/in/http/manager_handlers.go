package http

import (
	"net/http"
	"strconv"
	"time"

	"fueldelivery/internal/core/application/usecases/commands"
	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const dashboardPath = "/manager/dashboard"

type assignAgentForm struct {
	AgentID string `form:"agentId" validate:"required,uuid"`
}

type addAgentForm struct {
	Name    string `form:"name" validate:"required,max=255"`
	Contact string `form:"contact" validate:"required,max=50"`
}

type updateInventoryForm struct {
	Quantity string `form:"quantity" validate:"required"`
}

// Dashboard handles GET /manager/dashboard. Stale busy agents of the station are
// released before the dashboard is read.
func (s *Server) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	principal := currentPrincipal(c)

	if released, err := s.reconcile(c, principal); err != nil {
		s.logger.WarnContext(ctx, "agent sweep before dashboard failed", "error", err)
	} else if released > 0 {
		s.metrics.AddReleasedAgents(released)
		s.logger.InfoContext(ctx, "released stale agents", "count", released)
	}

	query, err := queries.NewGetManagerDashboardQuery(principal, time.Now())
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := s.queries.ManagerDashboard.Handle(ctx, query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toDashboardResponse(resp, s.popFlashes(c)))
}

// ConfirmOrder handles POST /manager/confirm-order/:orderId.
func (s *Server) ConfirmOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	cmd, err := commands.NewConfirmOrderCommand(currentPrincipal(c), orderID)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	err = s.commands.ConfirmOrder.Handle(c.Request().Context(), cmd)
	return s.redirect(c, dashboardPath, "Order confirmed", err)
}

// AssignAgent handles POST /manager/assign-agent/:orderId.
func (s *Server) AssignAgent(c echo.Context) error {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	var form assignAgentForm
	if err = bindForm(c, &form); err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	agentID, err := kernel.UUIDFromString(form.AgentID)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}

	cmd, err := commands.NewAssignAgentCommand(currentPrincipal(c), orderID, agentID)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	err = s.commands.AssignAgent.Handle(c.Request().Context(), cmd)
	return s.redirect(c, dashboardPath, "Agent assigned", err)
}

// RejectOrder handles POST /manager/orders/:id/reject.
func (s *Server) RejectOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	cmd, err := commands.NewRejectOrderCommand(currentPrincipal(c), orderID)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	err = s.commands.RejectOrder.Handle(c.Request().Context(), cmd)
	return s.redirect(c, dashboardPath, "Order rejected", err)
}

// DeliverOrder handles POST /manager/orders/:id/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	cmd, err := commands.NewDeliverOrderCommand(currentPrincipal(c), orderID)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	err = s.commands.DeliverOrder.Handle(c.Request().Context(), cmd)
	return s.redirect(c, dashboardPath, "Order delivered", err)
}

// CancelOrderAsManager handles POST /manager/orders/:id/cancel.
func (s *Server) CancelOrderAsManager(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	cmd, err := commands.NewCancelOrderCommand(currentPrincipal(c), orderID)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	err = s.commands.CancelOrder.Handle(c.Request().Context(), cmd)
	return s.redirect(c, dashboardPath, "Order cancelled", err)
}

// AddAgent handles POST /manager/add-agent.
func (s *Server) AddAgent(c echo.Context) error {
	var form addAgentForm
	if err := bindForm(c, &form); err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	cmd, err := commands.NewAddAgentCommand(currentPrincipal(c), kernel.NewUUID(), form.Name, form.Contact)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	err = s.commands.AddAgent.Handle(c.Request().Context(), cmd)
	return s.redirect(c, dashboardPath, "Agent added", err)
}

// RemoveAgent handles POST /manager/remove-agent/:agentId.
func (s *Server) RemoveAgent(c echo.Context) error {
	agentID, err := uuidParam(c, "agentId")
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	cmd, err := commands.NewRemoveAgentCommand(currentPrincipal(c), agentID)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	err = s.commands.RemoveAgent.Handle(c.Request().Context(), cmd)
	return s.redirect(c, dashboardPath, "Agent removed", err)
}

// UpdateInventory handles POST /manager/inventory/:id/update.
func (s *Server) UpdateInventory(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	var form updateInventoryForm
	if err = bindForm(c, &form); err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	cmd, err := commands.NewUpdateInventoryCommand(currentPrincipal(c), itemID, form.Quantity)
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	err = s.commands.UpdateInventory.Handle(c.Request().Context(), cmd)
	return s.redirect(c, dashboardPath, "Inventory updated", err)
}

// ReconcileAgents handles POST /manager/reconcile-agents.
func (s *Server) ReconcileAgents(c echo.Context) error {
	released, err := s.reconcile(c, currentPrincipal(c))
	if err != nil {
		return s.redirect(c, dashboardPath, "", err)
	}
	s.metrics.AddReleasedAgents(released)
	return s.redirect(c, dashboardPath, releasedMessage(released), nil)
}

func (s *Server) reconcile(c echo.Context, principal identity.Principal) (int, error) {
	managerID, err := principal.ManagerID()
	if err != nil {
		return 0, err
	}
	cmd, err := commands.NewReconcileAgentsCommand(&managerID)
	if err != nil {
		return 0, err
	}
	return s.commands.ReconcileAgents.Handle(c.Request().Context(), cmd)
}

func releasedMessage(n int) string {
	switch n {
	case 0:
		return "All agents are consistent"
	case 1:
		return "Released 1 agent"
	default:
		return "Released " + strconv.Itoa(n) + " agents"
	}
}
