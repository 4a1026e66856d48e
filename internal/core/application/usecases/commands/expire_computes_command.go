package commands

import (
	"errors"

	"routeplan/internal/pkg/guard"
)

var ErrExpireComputesCommandIsNotConstructed = errors.New(
	"ExpireComputesCommand must be created via NewExpireComputesCommand constructor",
)

// ExpireReason is recorded on computes failed by the expiry sweep.
const ExpireReason = "solver deadline exceeded"

// ExpireComputesCommand triggers one sweep over overdue pending computes.
type ExpireComputesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewExpireComputesCommand creates a sweep command.
func NewExpireComputesCommand() (ExpireComputesCommand, error) {
	return ExpireComputesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireComputesCommand) Validate() error {
	return c.guard.Validate(ErrExpireComputesCommandIsNotConstructed)
}
