package commands

import (
	"errors"
	"strings"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/domain/model/station"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

var (
	ErrRegisterStationCommandIsNotConstructed = errors.New(
		"RegisterStationCommand must be created via NewRegisterStationCommand constructor",
	)
	ErrPasswordIsRequired  = errs.NewValueIsRequiredError("password")
	ErrPasswordsDoNotMatch = errs.NewValueIsInvalidErrorWithCause("password", errors.New("passwords do not match"))
	ErrEmailIsAlreadyTaken = errs.NewValueIsInvalidErrorWithCause("email", errors.New("already registered"))
)

// RegisterStationCommand signs up a manager together with the station they run.
//
// Example:
//
//	cmd, err := NewRegisterStationCommand(kernel.NewUUID(), station.Profile{...},
//	    []string{"Petrol", "Diesel"}, "secret", "secret")
type RegisterStationCommand struct {
	stationID kernel.UUID
	profile   station.Profile
	password  string

	guard guard.ConstructorGuard
}

// NewRegisterStationCommand parses the declared fuel types into profile.FuelTypes.
// Profile fields are validated by station.NewStation when the handler runs.
func NewRegisterStationCommand(
	stationID kernel.UUID,
	profile station.Profile,
	fuelTypes []string,
	password, confirmPassword string,
) (RegisterStationCommand, error) {
	declared := make([]kernel.FuelType, 0, len(fuelTypes))
	var parseErrs []error
	for _, name := range fuelTypes {
		if strings.TrimSpace(name) == "" {
			continue
		}
		ft, err := kernel.NewFuelType(name)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		declared = append(declared, ft)
	}

	if err := errors.Join(
		stationID.Validate(),
		errors.Join(parseErrs...),
		checkPassword(password, confirmPassword),
	); err != nil {
		return RegisterStationCommand{}, err
	}

	profile.FuelTypes = declared
	return RegisterStationCommand{
		stationID: stationID,
		profile:   profile,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterStationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStationCommandIsNotConstructed)
}

func (c RegisterStationCommand) StationID() kernel.UUID {
	return c.stationID
}

func (c RegisterStationCommand) Profile() station.Profile {
	return c.profile
}

func (c RegisterStationCommand) Password() string {
	return c.password
}

func checkPassword(password, confirmPassword string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	if password != confirmPassword {
		return ErrPasswordsDoNotMatch
	}
	return nil
}
