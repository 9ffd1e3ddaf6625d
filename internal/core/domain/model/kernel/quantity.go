package kernel

import (
	"fmt"
	"strings"

	"fueldelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quantities are stored as numeric(14,3): at most three decimals, below 1e11.
const quantityScale = 3

var maxQuantity = decimal.New(1, 11)

// Quantity is a non-negative volume of fuel. Orders additionally require it to be positive.
type Quantity struct {
	value decimal.Decimal
}

func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value.String(), 0, "unbounded")
	}
	return Quantity{value: value}, nil
}

// QuantityFromString parses form input. Anything that is not a decimal number, or
// that does not fit the stored precision, is InvalidInput.
func QuantityFromString(s string) (Quantity, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%q is not a number", s))
	}
	q, err := NewQuantity(d)
	if err != nil {
		return Quantity{}, err
	}
	if err = q.ValidatePrecision(); err != nil {
		return Quantity{}, err
	}
	return q, nil
}

// ValidatePrecision rejects quantities with more than three decimals or of 1e11
// units and above.
func (q Quantity) ValidatePrecision() error {
	if !q.value.Equal(q.value.Truncate(quantityScale)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s has more than %d decimals", q.value, quantityScale),
		)
	}
	if q.value.Cmp(maxQuantity) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s is not below %s", q.value, maxQuantity),
		)
	}
	return nil
}

// MustQuantity panics on invalid input; reserved for package-level constants.
func MustQuantity(s string) Quantity {
	q, err := QuantityFromString(s)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

func (q Quantity) String() string {
	return q.value.String()
}
