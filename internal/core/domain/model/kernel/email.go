package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"fueldelivery/internal/pkg/errs"
)

// NormalizeEmail lower-cases and checks an address so that lookups by email are
// case-insensitive.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	return email, nil
}
