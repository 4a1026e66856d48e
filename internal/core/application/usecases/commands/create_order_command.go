package commands

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/order"
	"routeplan/internal/pkg/errs"
	"routeplan/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a planning unit over a
// selection of catalog locations and vehicles. The handler captures
// immutable snapshots of the referenced entities, so the command carries
// identifiers only.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	locationIDs []kernel.UUID
	vehicleIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to build a new order. At least
// order.MinSnapshotLocations locations and one vehicle are required.
func NewCreateOrderCommand(
	orderID kernel.UUID, locationIDs []kernel.UUID, vehicleIDs []kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationIDs(locationIDs),
		cmd.setVehicleIDs(vehicleIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationIDs returns the identifiers of the locations to snapshot.
func (c CreateOrderCommand) LocationIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.locationIDs))
	copy(ids, c.locationIDs)
	return ids
}

// VehicleIDs returns the identifiers of the vehicles to snapshot.
func (c CreateOrderCommand) VehicleIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.vehicleIDs))
	copy(ids, c.vehicleIDs)
	return ids
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLocationIDs(ids []kernel.UUID) error {
	if len(ids) < order.MinSnapshotLocations {
		return errs.NewValueIsInvalidError("locationIDs")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.locationIDs = make([]kernel.UUID, len(ids))
	copy(c.locationIDs, ids)
	return nil
}

func (c *CreateOrderCommand) setVehicleIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("vehicleIDs")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.vehicleIDs = make([]kernel.UUID, len(ids))
	copy(c.vehicleIDs, ids)
	return nil
}
