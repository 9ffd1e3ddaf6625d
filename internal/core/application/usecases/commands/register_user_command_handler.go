package commands

import (
	"context"

	"fueldelivery/internal/core/domain/model/user"
	"fueldelivery/internal/core/ports"
)

// RegisterUserCommandHandler stores a new customer account with a hashed password.
// An email already used by another customer fails with ErrEmailIsAlreadyTaken.
type RegisterUserCommandHandler struct {
	uowFactory RegistrationUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(
	uowFactory RegistrationUoWFactory,
	hasher ports.PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Mobile(), hash)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	if err = ensureEmailIsFree(func() error {
		_, getErr := userRepo.GetByEmail(ctx, u.Email())
		return getErr
	}); err != nil {
		return err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
