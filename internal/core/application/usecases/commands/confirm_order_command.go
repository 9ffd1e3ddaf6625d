package commands

import (
	"errors"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand moves a Pending order to Confirmed on behalf of its station manager.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(principal, orderID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ConfirmOrderCommand struct {
	principal identity.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(principal identity.Principal, orderID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := errors.Join(principal.Validate(), orderID.Validate()); err != nil {
		return ConfirmOrderCommand{}, err
	}
	return ConfirmOrderCommand{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) Principal() identity.Principal {
	return c.principal
}

func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
