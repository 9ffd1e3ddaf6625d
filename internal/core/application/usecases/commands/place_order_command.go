package commands

import (
	"errors"
	"strings"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/order"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrQuantityMustBePositive = errs.NewValueIsInvalidErrorWithCause(
		"quantity", errors.New("must be greater than 0"),
	)
)

// PlaceOrderCommand represents a user's request to buy fuel from a station.
// Inputs arrive as form text and are parsed here; anything malformed fails with
// an errs.ErrValueIsInvalid or errs.ErrValueIsRequired error.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(principal, orderID, stationID,
//	    "Petrol", "20", "Cash on Delivery", "12 Ring Road")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct {
	principal     identity.Principal
	orderID       kernel.UUID
	stationID     kernel.UUID
	fuelType      kernel.FuelType
	quantity      kernel.Quantity
	paymentMethod order.PaymentMethod
	address       string

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	principal identity.Principal,
	orderID, stationID kernel.UUID,
	fuelType, quantity, paymentMethod, address string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		cmd.setIDs(orderID, stationID),
		cmd.setFuelType(fuelType),
		cmd.setQuantity(quantity),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setAddress(address),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Principal() identity.Principal {
	return c.principal
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) StationID() kernel.UUID {
	return c.stationID
}

func (c PlaceOrderCommand) FuelType() kernel.FuelType {
	return c.fuelType
}

func (c PlaceOrderCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c PlaceOrderCommand) Address() string {
	return c.address
}

func (c *PlaceOrderCommand) setIDs(orderID, stationID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), stationID.Validate()); err != nil {
		return err
	}
	c.orderID = orderID
	c.stationID = stationID
	return nil
}

func (c *PlaceOrderCommand) setFuelType(fuelType string) error {
	ft, err := kernel.NewFuelType(fuelType)
	if err != nil {
		return err
	}
	c.fuelType = ft
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity string) error {
	q, err := kernel.QuantityFromString(quantity)
	if err != nil {
		return err
	}
	if !q.IsPositive() {
		return ErrQuantityMustBePositive
	}
	c.quantity = q
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	method, err := order.ParsePaymentMethod(paymentMethod)
	if err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return order.ErrAddressIsRequired
	}
	c.address = address
	return nil
}
