package station

import (
	"errors"
	"strings"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

var (
	ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")
	ErrFuelTypesAreRequired    = errs.NewValueIsRequiredError("fuelTypes")
)

// Station is a manager's fuel-selling location. The manager and the station share
// one identity: the station id is the managerId carried by orders, agents and
// inventory rows.
type Station struct {
	id           kernel.UUID
	managerName  string
	email        string
	mobile       string
	passwordHash string
	name         string
	address      string
	fuelTypes    []kernel.FuelType
	guard        guard.ConstructorGuard
}

// Profile groups the registration details of a station and its manager.
type Profile struct {
	ManagerName string
	Email       string
	Mobile      string
	StationName string
	Address     string
	FuelTypes   []kernel.FuelType
}

// NewStation registers a station. Duplicate fuel types (case-insensitive) are
// collapsed; at least one must remain.
func NewStation(id kernel.UUID, profile Profile, passwordHash string) (*Station, error) {
	s := &Station{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		s.setProfile(profile),
		requireText("password", passwordHash),
	); err != nil {
		return nil, err
	}

	s.id = id
	s.passwordHash = passwordHash
	return s, nil
}

func (s *Station) Validate() error {
	if s == nil {
		return ErrStationIsNotConstructed
	}
	return s.guard.Validate(ErrStationIsNotConstructed)
}

func (s *Station) ID() kernel.UUID {
	return s.id
}

// ManagerID is the station id seen from the ownership side.
func (s *Station) ManagerID() kernel.UUID {
	return s.id
}

func (s *Station) ManagerName() string {
	return s.managerName
}

func (s *Station) Email() string {
	return s.email
}

func (s *Station) Mobile() string {
	return s.mobile
}

func (s *Station) PasswordHash() string {
	return s.passwordHash
}

func (s *Station) Name() string {
	return s.name
}

func (s *Station) Address() string {
	return s.address
}

func (s *Station) FuelTypes() []kernel.FuelType {
	out := make([]kernel.FuelType, len(s.fuelTypes))
	copy(out, s.fuelTypes)
	return out
}

// Offers reports whether the station declared the fuel type.
func (s *Station) Offers(fuelType kernel.FuelType) bool {
	for _, ft := range s.fuelTypes {
		if ft.IsEqual(fuelType) {
			return true
		}
	}
	return false
}

// SeedInventory builds the initial ledger: one row per declared fuel type at the
// default quantity and price.
func (s *Station) SeedInventory() ([]*InventoryItem, error) {
	items := make([]*InventoryItem, 0, len(s.fuelTypes))
	for _, ft := range s.fuelTypes {
		item, err := NewInventoryItem(kernel.NewUUID(), s.id, ft, DefaultSeedQuantity, DefaultSeedPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Station) setProfile(p Profile) error {
	email, emailErr := kernel.NormalizeEmail(p.Email)

	if err := errors.Join(
		requireText("managerName", p.ManagerName),
		emailErr,
		requireText("mobile", p.Mobile),
		requireText("stationName", p.StationName),
		requireText("address", p.Address),
		s.setFuelTypes(p.FuelTypes),
	); err != nil {
		return err
	}

	s.managerName = strings.TrimSpace(p.ManagerName)
	s.email = email
	s.mobile = strings.TrimSpace(p.Mobile)
	s.name = strings.TrimSpace(p.StationName)
	s.address = strings.TrimSpace(p.Address)
	return nil
}

func (s *Station) setFuelTypes(fuelTypes []kernel.FuelType) error {
	unique := make([]kernel.FuelType, 0, len(fuelTypes))
	for _, ft := range fuelTypes {
		if err := ft.Validate(); err != nil {
			return err
		}
		duplicate := false
		for _, seen := range unique {
			if seen.IsEqual(ft) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, ft)
		}
	}
	if len(unique) == 0 {
		return ErrFuelTypesAreRequired
	}
	s.fuelTypes = unique
	return nil
}

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
