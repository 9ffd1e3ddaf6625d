package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fueldelivery/internal/pkg/errs"
)

const maxFuelTypeLength = 50

// ErrFuelTypeIsRequired is returned for blank fuel type names.
var ErrFuelTypeIsRequired = errs.NewValueIsRequiredError("fuelType")

// FuelType names a grade of fuel ("Petrol", "Diesel", ...). Comparison ignores case.
type FuelType struct {
	name string
}

func NewFuelType(name string) (FuelType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return FuelType{}, ErrFuelTypeIsRequired
	}
	if utf8.RuneCountInString(name) > maxFuelTypeLength {
		return FuelType{}, errs.NewValueIsInvalidErrorWithCause(
			"fuelType",
			fmt.Errorf("longer than %d characters", maxFuelTypeLength),
		)
	}
	return FuelType{name: name}, nil
}

func (f FuelType) String() string {
	return f.name
}

func (f FuelType) IsEqual(other FuelType) bool {
	return strings.EqualFold(f.name, other.name)
}

// Validate rejects the zero value.
func (f FuelType) Validate() error {
	if f.name == "" {
		return ErrFuelTypeIsRequired
	}
	return nil
}
