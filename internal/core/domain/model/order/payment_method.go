package order

import (
	"fmt"
	"strings"

	"fueldelivery/internal/pkg/errs"
)

// PaymentMethod records how the customer pays. Payment itself is simulated:
// online payments are treated as settled when the order is placed.
type PaymentMethod int

const (
	UnknownPayment PaymentMethod = iota
	CashOnDelivery
	OnlinePayment
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash on delivery", "cod", "cash":
		return CashOnDelivery, nil
	case "online payment", "online":
		return OnlinePayment, nil
	}
	return UnknownPayment, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a supported payment method", s),
	)
}

func (p PaymentMethod) String() string {
	switch p {
	case CashOnDelivery:
		return "Cash on Delivery"
	case OnlinePayment:
		return "Online Payment"
	case UnknownPayment:
		return "Unknown"
	}
	return "Unknown"
}

func (p PaymentMethod) Validate() error {
	if p != CashOnDelivery && p != OnlinePayment {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// IsPrepaid reports whether the (simulated) payment is settled at placement.
func (p PaymentMethod) IsPrepaid() bool {
	return p == OnlinePayment
}
