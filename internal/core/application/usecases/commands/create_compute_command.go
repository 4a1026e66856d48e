package commands

import (
	"errors"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"
	"routeplan/internal/pkg/guard"
)

var ErrCreateComputeCommandIsNotConstructed = errors.New(
	"CreateComputeCommand must be created via NewCreateComputeCommand constructor",
)

// CreateComputeCommand represents a request to start an asynchronous route
// computation for an order. A zero time limit means the solver default.
type CreateComputeCommand struct { //nolint:recvcheck //using for validation
	computeID        kernel.UUID
	orderID          kernel.UUID
	timeLimitSeconds int

	guard guard.ConstructorGuard
}

// NewCreateComputeCommand creates a command to dispatch a compute job.
func NewCreateComputeCommand(
	computeID kernel.UUID, orderID kernel.UUID, timeLimitSeconds int,
) (CreateComputeCommand, error) {
	cmd := CreateComputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setComputeID(computeID),
		cmd.setOrderID(orderID),
		cmd.setTimeLimitSeconds(timeLimitSeconds),
	); err != nil {
		return CreateComputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateComputeCommand) Validate() error {
	return c.guard.Validate(ErrCreateComputeCommandIsNotConstructed)
}

// ComputeID returns the identifier for the new compute job.
func (c CreateComputeCommand) ComputeID() kernel.UUID {
	return c.computeID
}

// OrderID returns the identifier of the order to solve.
func (c CreateComputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Policy returns the solver policy derived from the command.
func (c CreateComputeCommand) Policy() compute.Policy {
	return compute.Policy{TimeLimitSeconds: c.timeLimitSeconds}
}

func (c *CreateComputeCommand) setComputeID(computeID kernel.UUID) error {
	if err := computeID.Validate(); err != nil {
		return err
	}

	c.computeID = computeID
	return nil
}

func (c *CreateComputeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateComputeCommand) setTimeLimitSeconds(timeLimitSeconds int) error {
	if timeLimitSeconds < 0 {
		return errs.NewValueIsInvalidError("timeLimitSeconds")
	}

	c.timeLimitSeconds = timeLimitSeconds
	return nil
}
