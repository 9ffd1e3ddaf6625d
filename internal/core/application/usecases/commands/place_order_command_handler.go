package commands

import (
	"context"
	"fmt"
	"time"

	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/core/ports"
	"fueldelivery/internal/pkg/errs"
)

// PlaceOrderCommandHandler creates a Pending order priced from the global catalog.
// Inventory is read by the storefront only; placing an order never reserves or
// decrements stock.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, priceCatalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	prices     ports.PriceCatalog
}

func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory, prices ports.PriceCatalog) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		prices:     prices,
	}
}

// Handle fails with errs.ErrForbidden for a non-user principal,
// catalog.ErrPriceUnavailable when the fuel type has no global price,
// errs.ErrObjectNotFound for an unknown station and errs.ErrValueIsInvalid when
// the station does not sell the fuel type.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	userID, err := cmd.Principal().UserID()
	if err != nil {
		return err
	}

	// Priced outside the transaction: the catalog may be a cache in front of
	// another connection.
	price, err := h.prices.CurrentPrice(ctx, cmd.FuelType())
	if err != nil {
		return err
	}

	quote, err := order.NewQuote(price, cmd.Quantity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	station, err := uow.StationRepository().Get(ctx, cmd.StationID())
	if err != nil {
		return err
	}
	if !station.Offers(cmd.FuelType()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"fuelType",
			fmt.Errorf("%s is not sold at station %s", cmd.FuelType(), station.Name()),
		)
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		userID,
		station.ManagerID(),
		cmd.FuelType(),
		quote,
		cmd.PaymentMethod(),
		cmd.Address(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
