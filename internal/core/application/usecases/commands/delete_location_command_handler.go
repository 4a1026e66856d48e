package commands

import (
	"context"
)

// DeleteLocationCommandHandler marks locations as deleted. Deletion is
// logical: order snapshots and stored routes keep referencing the row.
type DeleteLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewDeleteLocationCommandHandler creates a handler for location deletion.
func NewDeleteLocationCommandHandler(uowFactory LocationUoWFactory) DeleteLocationCommandHandler {
	return DeleteLocationCommandHandler{uowFactory: uowFactory}
}

// Handle flips the location's status to deleted and persists it.
func (h *DeleteLocationCommandHandler) Handle(ctx context.Context, cmd DeleteLocationCommand) error {
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

	if err = aggregate.Delete(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
