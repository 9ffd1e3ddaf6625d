package kernel

import (
	"fmt"

	"fueldelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

// Money is a non-negative amount in the station's currency, backed by shopspring/decimal
// so that price multiplications stay exact until rounded to cents.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rejects negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal amount such as "96.72".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a number", s))
	}
	return NewMoney(d)
}

// MustMoney panics on invalid input; reserved for package-level constants.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Mul multiplies a unit price by a quantity without rounding.
func (m Money) Mul(q Quantity) Money {
	return Money{amount: m.amount.Mul(q.value)}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Percent returns m * rate, e.g. rate 0.10 for a ten percent fee.
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

// Round rounds half away from zero to cents.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(moneyScale)}
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats with exactly two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
