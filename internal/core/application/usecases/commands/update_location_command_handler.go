package commands

import (
	"context"
)

// UpdateLocationCommandHandler applies full-state updates to catalog
// locations. Existing order snapshots keep the values captured at order
// creation.
type UpdateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewUpdateLocationCommandHandler creates a handler for location updates.
func NewUpdateLocationCommandHandler(uowFactory LocationUoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{uowFactory: uowFactory}
}

// Handle loads the location, replaces its mutable state, and persists it.
func (h *UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
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

	repo := uow.LocationRepository()
	aggregate, err := repo.Get(ctx, cmd.LocationID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(cmd.Name(), cmd.Address(), cmd.Point()); err != nil {
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

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
