package commands

import (
	"context"
	"time"

	"routeplan/internal/core/domain/model/order"
	"routeplan/internal/core/domain/services"
	"routeplan/internal/pkg/errs"
)

// CreateOrderCommandHandler builds orders by snapshotting the referenced
// catalog entities inside one transaction. Reading the catalog and writing
// the order in the same transaction guarantees the snapshot reflects a
// single consistent point in time.
//
// Creation also completes the travel matrix for the snapshot, so the
// distance cache is warm before any compute is requested and an unroutable
// location combination rejects the order up front.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	matrixService *services.MatrixService
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory, matrixService *services.MatrixService,
) (CreateOrderCommandHandler, error) {
	if uowFactory == nil {
		return CreateOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if matrixService == nil {
		return CreateOrderCommandHandler{}, errs.NewValueIsRequiredError("matrixService")
	}

	return CreateOrderCommandHandler{uowFactory: uowFactory, matrixService: matrixService}, nil
}

// Handle loads the referenced locations and vehicles, captures their
// snapshots, completes the travel matrix for them, and persists the new
// order. A matrix failure aborts creation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	locations, err := uow.LocationRepository().GetByIDs(ctx, cmd.LocationIDs())
	if err != nil {
		return err
	}

	vehicles, err := uow.VehicleRepository().GetByIDs(ctx, cmd.VehicleIDs())
	if err != nil {
		return err
	}

	locationRecords := make([]order.LocationRecord, 0, len(locations))
	for _, l := range locations {
		locationRecords = append(locationRecords, order.SnapshotLocation(l))
	}

	vehicleRecords := make([]order.VehicleRecord, 0, len(vehicles))
	for _, v := range vehicles {
		vehicleRecords = append(vehicleRecords, order.SnapshotVehicle(v))
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), locationRecords, vehicleRecords, time.Now().Unix())
	if err != nil {
		return err
	}

	if _, err = h.matrixService.EnsureMatrix(ctx, aggregate.Locations()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
