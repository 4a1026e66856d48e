package commands

import (
	"context"
)

// DeleteVehicleCommandHandler marks vehicles as deleted. Order snapshots
// that already reference the vehicle are unaffected.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle deletion.
func NewDeleteVehicleCommandHandler(uowFactory VehicleUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle flips the vehicle's status to deleted and persists it.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VehicleRepository()
	aggregate, err := repo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = aggregate.Delete(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
