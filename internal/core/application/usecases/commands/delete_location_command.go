package commands

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/guard"
)

var ErrDeleteLocationCommandIsNotConstructed = errors.New(
	"DeleteLocationCommand must be created via NewDeleteLocationCommand constructor",
)

// DeleteLocationCommand requests logical removal of a location.
type DeleteLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLocationCommand creates a command to delete the given location.
func NewDeleteLocationCommand(locationID kernel.UUID) (DeleteLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return DeleteLocationCommand{}, err
	}

	return DeleteLocationCommand{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLocationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLocationCommandIsNotConstructed)
}

// LocationID returns the identifier of the location to delete.
func (c DeleteLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}
