package commands

import (
	"context"

	"routeplan/internal/core/domain/model/location"
)

// CreateLocationCommandHandler persists new locations to the catalog.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location registration.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{uowFactory: uowFactory}
}

// Handle creates the location aggregate and stores it in one transaction.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := location.NewLocation(cmd.LocationID(), cmd.Name(), cmd.Address(), cmd.Point())
	if err != nil {
		return err
	}

	if err = aggregate.SetDemand(cmd.Pickup(), cmd.Delivery()); err != nil {
		return err
	}
	if err = aggregate.SetServiceTime(cmd.ServiceTime()); err != nil {
		return err
	}
	if err = aggregate.SetWindow(cmd.Window()); err != nil {
		return err
	}
	aggregate.MarkDepot(cmd.IsDepot())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LocationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
