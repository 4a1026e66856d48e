package commands

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"
	"routeplan/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a vehicle in the
// fleet catalog.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	number    string
	capacity  int
	fixedCost int

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Capacity must be positive, fixed cost non-negative.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID, number string, capacity int, fixedCost int,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setNumber(number),
		cmd.setCapacity(capacity),
		cmd.setFixedCost(fixedCost),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier for the new vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Number returns the fleet number.
func (c CreateVehicleCommand) Number() string {
	return c.number
}

// Capacity returns the carrying capacity in abstract units.
func (c CreateVehicleCommand) Capacity() int {
	return c.capacity
}

// FixedCost returns the cost of putting the vehicle on the road.
func (c CreateVehicleCommand) FixedCost() int {
	return c.fixedCost
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}

	c.number = number
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidError("capacity")
	}

	c.capacity = capacity
	return nil
}

func (c *CreateVehicleCommand) setFixedCost(fixedCost int) error {
	if fixedCost < 0 {
		return errs.NewValueIsInvalidError("fixedCost")
	}

	c.fixedCost = fixedCost
	return nil
}
