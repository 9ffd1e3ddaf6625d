package commands

import (
	"errors"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand signs up a customer account.
type RegisterUserCommand struct {
	userID   kernel.UUID
	name     string
	email    string
	mobile   string
	password string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(userID kernel.UUID, name, email, mobile, password string) (RegisterUserCommand, error) {
	var passwordErr error
	if password == "" {
		passwordErr = ErrPasswordIsRequired
	}
	if err := errors.Join(userID.Validate(), passwordErr); err != nil {
		return RegisterUserCommand{}, err
	}
	return RegisterUserCommand{
		userID:   userID,
		name:     name,
		email:    email,
		mobile:   mobile,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Mobile() string {
	return c.mobile
}

func (c RegisterUserCommand) Password() string {
	return c.password
}
