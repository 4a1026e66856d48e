package commands

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/guard"
)

var ErrCancelComputeCommandIsNotConstructed = errors.New(
	"CancelComputeCommand must be created via NewCancelComputeCommand constructor",
)

// CancelComputeCommand requests cancellation of a compute job that has not
// reached a terminal state yet.
type CancelComputeCommand struct { //nolint:recvcheck //using for validation
	computeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelComputeCommand creates a command to cancel the given compute.
func NewCancelComputeCommand(computeID kernel.UUID) (CancelComputeCommand, error) {
	if err := computeID.Validate(); err != nil {
		return CancelComputeCommand{}, err
	}

	return CancelComputeCommand{
		computeID: computeID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelComputeCommand) Validate() error {
	return c.guard.Validate(ErrCancelComputeCommandIsNotConstructed)
}

// ComputeID returns the identifier of the compute to cancel.
func (c CancelComputeCommand) ComputeID() kernel.UUID {
	return c.computeID
}
