package commands

import (
	"context"

	"routeplan/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler persists new vehicles to the fleet catalog.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle creates the vehicle aggregate and stores it in one transaction.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Number(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = aggregate.SetFixedCost(cmd.FixedCost()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
