package commands

import (
	"context"
	"time"

	"routeplan/internal/core/domain/model/compute"
)

// CancelComputeCommandHandler cancels in-flight compute jobs. A late solver
// callback for a cancelled job is rejected by the same conditional
// transition the reconciler uses, so a cancellation is never overwritten.
type CancelComputeCommandHandler struct {
	uowFactory ComputeUoWFactory
}

// NewCancelComputeCommandHandler creates a handler for compute cancellation.
func NewCancelComputeCommandHandler(uowFactory ComputeUoWFactory) CancelComputeCommandHandler {
	return CancelComputeCommandHandler{uowFactory: uowFactory}
}

// Handle transitions the compute to cancelled if it is still running.
func (h *CancelComputeCommandHandler) Handle(ctx context.Context, cmd CancelComputeCommand) error {
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

	err := uow.ComputeRepository().Finish(
		ctx, cmd.ComputeID(), compute.Cancelled, "", time.Now().Unix(),
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
