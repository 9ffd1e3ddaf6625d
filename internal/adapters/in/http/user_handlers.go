package http

import (
	"net/http"

	"fueldelivery/internal/core/application/usecases/commands"
	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const userOrdersPath = "/user/orders"

type quoteForm struct {
	FuelType string `form:"fuelType" validate:"required,max=50"`
	Quantity string `form:"quantity" validate:"required"`
}

type placeOrderForm struct {
	FuelType      string `form:"fuelType" validate:"required,max=50"`
	Quantity      string `form:"quantity" validate:"required"`
	PaymentMethod string `form:"paymentMethod" validate:"required"`
	Address       string `form:"address" validate:"required,max=500"`
}

// ListStations handles GET /user/stations.
func (s *Server) ListStations(c echo.Context) error {
	query, err := queries.NewGetStationsQuery()
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := s.queries.Stations.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toStationResponses(resp.Stations))
}

// SelectStation handles GET /user/select-station/:stationId.
func (s *Server) SelectStation(c echo.Context) error {
	stationID, err := uuidParam(c, "stationId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetStationFuelOptionsQuery(stationID.String())
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := s.queries.StationFuelOptions.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toFuelOptionsResponse(resp, s.popFlashes(c)))
}

// QuoteOrder handles POST /user/confirm-order/:stationId. Nothing is persisted.
func (s *Server) QuoteOrder(c echo.Context) error {
	stationID, err := uuidParam(c, "stationId")
	if err != nil {
		return s.fail(c, err)
	}
	var form quoteForm
	if err = bindForm(c, &form); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetQuoteQuery(currentPrincipal(c), stationID.String(), form.FuelType, form.Quantity)
	if err != nil {
		return s.fail(c, err)
	}
	quote, err := s.queries.Quote.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// PlaceOrder handles POST /user/place-order/:stationId. On failure the user is
// sent back to the station page.
func (s *Server) PlaceOrder(c echo.Context) error {
	stationID, err := uuidParam(c, "stationId")
	if err != nil {
		return s.redirect(c, "/user/stations", "", err)
	}
	back := "/user/select-station/" + stationID.String()

	var form placeOrderForm
	if err = bindForm(c, &form); err != nil {
		return s.redirect(c, back, "", err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		currentPrincipal(c), orderID, stationID,
		form.FuelType, form.Quantity, form.PaymentMethod, form.Address,
	)
	if err != nil {
		return s.redirect(c, back, "", err)
	}
	if err = s.commands.PlaceOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.redirect(c, back, "", err)
	}

	return s.redirect(c, userOrdersPath, "Order placed successfully", nil)
}

// ListUserOrders handles GET /user/orders.
func (s *Server) ListUserOrders(c echo.Context) error {
	query, err := queries.NewGetUserOrdersQuery(currentPrincipal(c))
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := s.queries.UserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, userOrdersResponse{
		Orders:  toUserOrderResponses(resp.Orders),
		Flashes: s.popFlashes(c),
	})
}

// CancelOrderAsUser handles POST /user/orders/:id/cancel.
func (s *Server) CancelOrderAsUser(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return s.redirect(c, userOrdersPath, "", err)
	}
	cmd, err := commands.NewCancelOrderCommand(currentPrincipal(c), orderID)
	if err != nil {
		return s.redirect(c, userOrdersPath, "", err)
	}
	err = s.commands.CancelOrder.Handle(c.Request().Context(), cmd)
	return s.redirect(c, userOrdersPath, "Order cancelled", err)
}
