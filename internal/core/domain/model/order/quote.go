package order

import (
	"errors"
	"fmt"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ServiceFeeRate is applied on top of the fuel subtotal.
	ServiceFeeRate = decimal.RequireFromString("0.10")

	// maxTotal is the exclusive bound of the numeric(14,2) amount columns.
	maxTotal = decimal.New(1, 12)
)

var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote")

// Quote is the price breakdown shown before placement and frozen on the order:
//
//	subtotal   = quantity * unitPrice
//	serviceFee = subtotal * 0.10
//	total      = subtotal + serviceFee
//
// Amounts are rounded to cents.
type Quote struct {
	unitPrice  kernel.Money
	quantity   kernel.Quantity
	subtotal   kernel.Money
	serviceFee kernel.Money
	total      kernel.Money
	guard      guard.ConstructorGuard
}

// NewQuote prices quantity at unitPrice. A total that rounds to zero or does not
// fit the stored amount is rejected as invalid quantity.
func NewQuote(unitPrice kernel.Money, quantity kernel.Quantity) (Quote, error) {
	if !quantity.IsPositive() {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s is not greater than 0", quantity),
		)
	}
	if err := quantity.ValidatePrecision(); err != nil {
		return Quote{}, err
	}
	if !unitPrice.IsPositive() {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}

	subtotal := unitPrice.Mul(quantity).Round()
	fee := subtotal.Percent(ServiceFeeRate).Round()
	total := subtotal.Add(fee)

	if !total.IsPositive() {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s at %s comes to a total of %s", quantity, unitPrice, total),
		)
	}
	if total.Amount().Cmp(maxTotal) >= 0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("total %s is not below %s", total, maxTotal),
		)
	}

	return Quote{
		unitPrice:  unitPrice,
		quantity:   quantity,
		subtotal:   subtotal,
		serviceFee: fee,
		total:      total,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreQuote rebuilds a persisted quote without recomputing it; the global price
// may have changed since the order was placed.
func RestoreQuote(unitPrice kernel.Money, quantity kernel.Quantity, subtotal, serviceFee, total kernel.Money) (Quote, error) {
	if !quantity.IsPositive() || !total.IsPositive() {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"quote",
			fmt.Errorf("quantity %s and total %s must be positive", quantity, total),
		)
	}
	return Quote{
		unitPrice:  unitPrice,
		quantity:   quantity,
		subtotal:   subtotal,
		serviceFee: serviceFee,
		total:      total,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

func (q Quote) UnitPrice() kernel.Money {
	return q.unitPrice
}

func (q Quote) Quantity() kernel.Quantity {
	return q.quantity
}

func (q Quote) Subtotal() kernel.Money {
	return q.subtotal
}

func (q Quote) ServiceFee() kernel.Money {
	return q.serviceFee
}

func (q Quote) Total() kernel.Money {
	return q.total
}
