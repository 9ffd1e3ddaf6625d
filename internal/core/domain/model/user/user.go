// Package user holds the customer account that places orders.
package user

import (
	"errors"
	"strings"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

type User struct {
	id           kernel.UUID
	name         string
	email        string
	mobile       string
	passwordHash string
	guard        guard.ConstructorGuard
}

// NewUser registers a customer account.
func NewUser(id kernel.UUID, name, email, mobile, passwordHash string) (*User, error) {
	normalized, emailErr := kernel.NormalizeEmail(email)

	if err := errors.Join(
		id.Validate(),
		required("name", name),
		emailErr,
		required("mobile", mobile),
		required("password", passwordHash),
	); err != nil {
		return nil, err
	}

	return &User{
		id:           id,
		name:         strings.TrimSpace(name),
		email:        normalized,
		mobile:       strings.TrimSpace(mobile),
		passwordHash: passwordHash,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Mobile() string {
	return u.mobile
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func required(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
