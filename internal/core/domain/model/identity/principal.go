// Package identity models the acting principal of a request. The HTTP boundary
// resolves it once from the session; use cases receive it explicitly and never
// look at session state themselves.
package identity

import (
	"errors"
	"strings"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

// Role tags the principal variant.
type Role int

const (
	RoleUnknown Role = iota
	RoleUser
	RoleManager
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleManager:
		return "manager"
	case RoleUnknown:
		return "unknown"
	}
	return "unknown"
}

// ParseRole is the inverse of Role.String for the two concrete roles.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(s) {
	case "user":
		return RoleUser, nil
	case "manager":
		return RoleManager, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewUser or NewManager")

// Principal is either User(id) or Manager(id). For a manager the id is also the
// station id, since every manager operates exactly one station.
type Principal struct {
	role  Role
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

func NewUser(id kernel.UUID, name string) (Principal, error) {
	return newPrincipal(RoleUser, id, name)
}

func NewManager(id kernel.UUID, name string) (Principal, error) {
	return newPrincipal(RoleManager, id, name)
}

func newPrincipal(role Role, id kernel.UUID, name string) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{role: role, id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) ID() kernel.UUID {
	return p.id
}

func (p Principal) Name() string {
	return p.name
}

func (p Principal) IsManager() bool {
	return p.role == RoleManager
}

func (p Principal) IsUser() bool {
	return p.role == RoleUser
}

// ManagerID returns the id of a manager principal, Forbidden for anyone else.
func (p Principal) ManagerID() (kernel.UUID, error) {
	if err := p.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if p.role != RoleManager {
		return kernel.UUID{}, errs.NewForbiddenError("manager action for", p.role)
	}
	return p.id, nil
}

// UserID returns the id of a user principal, Forbidden for anyone else.
func (p Principal) UserID() (kernel.UUID, error) {
	if err := p.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if p.role != RoleUser {
		return kernel.UUID{}, errs.NewForbiddenError("user action for", p.role)
	}
	return p.id, nil
}
