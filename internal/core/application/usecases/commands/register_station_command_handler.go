package commands

import (
	"context"
	"errors"

	"fueldelivery/internal/core/domain/model/station"
	"fueldelivery/internal/core/ports"
	"fueldelivery/internal/pkg/errs"
)

// RegisterStationCommandHandler stores a new station and seeds one inventory row
// per declared fuel type (station.DefaultSeedQuantity at station.DefaultSeedPrice)
// in the same transaction.
type RegisterStationCommandHandler struct {
	uowFactory RegistrationUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterStationCommandHandler(
	uowFactory RegistrationUoWFactory,
	hasher ports.PasswordHasher,
) RegisterStationCommandHandler {
	return RegisterStationCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h RegisterStationCommandHandler) Handle(ctx context.Context, cmd RegisterStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	s, err := station.NewStation(cmd.StationID(), cmd.Profile(), hash)
	if err != nil {
		return err
	}

	items, err := s.SeedInventory()
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

	stationRepo := uow.StationRepository()

	if err = ensureEmailIsFree(func() error {
		_, getErr := stationRepo.GetByEmail(ctx, s.Email())
		return getErr
	}); err != nil {
		return err
	}

	if err = stationRepo.Add(ctx, s); err != nil {
		return err
	}

	if err = uow.InventoryRepository().AddAll(ctx, items); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureEmailIsFree turns a successful lookup into ErrEmailIsAlreadyTaken and a
// not-found lookup into nil.
func ensureEmailIsFree(lookup func() error) error {
	err := lookup()
	switch {
	case err == nil:
		return ErrEmailIsAlreadyTaken
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return err
	}
}

