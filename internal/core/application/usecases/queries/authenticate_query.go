package queries

import (
	"errors"
	"strings"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)
	// ErrInvalidCredentials does not tell an unknown email from a wrong password.
	ErrInvalidCredentials = errs.NewForbiddenErrorWithCause(
		"credentials", "", errors.New("email or password is incorrect"),
	)
)

// AuthenticateQuery resolves a login form into a Principal.
type AuthenticateQuery struct {
	role     identity.Role
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(role identity.Role, email, password string) (AuthenticateQuery, error) {
	if role != identity.RoleUser && role != identity.RoleManager {
		return AuthenticateQuery{}, errs.NewValueIsInvalidError("role")
	}

	var missing []error
	if strings.TrimSpace(email) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		missing = append(missing, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(missing...); err != nil {
		return AuthenticateQuery{}, err
	}

	return AuthenticateQuery{
		role:     role,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

func (q AuthenticateQuery) Role() identity.Role {
	return q.role
}

func (q AuthenticateQuery) Email() string {
	return q.email
}

func (q AuthenticateQuery) Password() string {
	return q.password
}
