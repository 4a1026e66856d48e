package commands

import (
	"context"
	"time"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
)

// ApplySolverResultCommandHandler reconciles solver callbacks with stored
// compute jobs.
//
// The terminal transition and the route inserts share one transaction, and
// the transition itself is conditional on the job not being terminal yet.
// A redelivered callback or a callback racing a cancellation therefore
// either wins cleanly or fails with compute.ErrAlreadyTerminal, and routes
// are never written twice.
type ApplySolverResultCommandHandler struct {
	uowFactory ReconcileUoWFactory
}

// NewApplySolverResultCommandHandler creates a handler for callback
// reconciliation.
func NewApplySolverResultCommandHandler(uowFactory ReconcileUoWFactory) ApplySolverResultCommandHandler {
	return ApplySolverResultCommandHandler{uowFactory: uowFactory}
}

// Handle finishes the compute and, for completed outcomes, persists its
// routes atomically.
func (h *ApplySolverResultCommandHandler) Handle(ctx context.Context, cmd ApplySolverResultCommand) error {
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
		ctx, cmd.ComputeID(), cmd.Status(), cmd.FailReason(), time.Now().Unix(),
	)
	if err != nil {
		return err
	}

	if cmd.Status() == compute.Completed {
		if err = h.storeRoutes(ctx, uow, cmd); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *ApplySolverResultCommandHandler) storeRoutes(
	ctx context.Context, uow ReconcileUoW, cmd ApplySolverResultCommand,
) error {
	repo := uow.RouteRepository()

	for _, result := range cmd.Routes() {
		route := compute.Route{
			ID:            kernel.NewUUID(),
			ComputeID:     cmd.ComputeID(),
			VehicleID:     result.VehicleID,
			TotalDistance: result.TotalDistance,
		}

		stops := make([]compute.RouteStop, 0, len(result.Stops))
		totalLoad := 0
		for i, stop := range result.Stops {
			stops = append(stops, compute.RouteStop{
				ID:          kernel.NewUUID(),
				RouteID:     route.ID,
				LocationID:  stop.LocationID,
				Sequence:    i,
				ArrivalTime: stop.ArrivalTime,
				Demand:      stop.Demand,
			})
			totalLoad += stop.Demand
		}

		// Total time is the arrival at the final stop; stops arrive in
		// visit order from the solver.
		route.TotalTime = result.Stops[len(result.Stops)-1].ArrivalTime
		route.TotalLoad = totalLoad

		if err := repo.Add(ctx, route, stops); err != nil {
			return err
		}
	}

	return nil
}
