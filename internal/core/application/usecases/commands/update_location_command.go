package commands

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand replaces every mutable attribute of a location.
// Updates never propagate into existing order snapshots.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID  kernel.UUID
	name        string
	address     string
	point       kernel.GeoPoint
	pickup      int
	delivery    int
	serviceTime int
	window      kernel.TimeWindow
	isDepot     bool

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command carrying the full replacement
// state for an existing location.
func NewUpdateLocationCommand(
	locationID kernel.UUID,
	name string,
	address string,
	lat float64,
	lng float64,
	pickup int,
	delivery int,
	serviceTime int,
	windowStart int,
	windowEnd int,
	isDepot bool,
) (UpdateLocationCommand, error) {
	base, err := NewCreateLocationCommand(
		locationID, name, address, lat, lng,
		pickup, delivery, serviceTime, windowStart, windowEnd, isDepot,
	)
	if err != nil {
		return UpdateLocationCommand{}, err
	}

	return UpdateLocationCommand{
		locationID:  base.LocationID(),
		name:        base.Name(),
		address:     base.Address(),
		point:       base.Point(),
		pickup:      base.Pickup(),
		delivery:    base.Delivery(),
		serviceTime: base.ServiceTime(),
		window:      base.Window(),
		isDepot:     base.IsDepot(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// LocationID returns the identifier of the location to update.
func (c UpdateLocationCommand) LocationID() kernel.UUID { return c.locationID }

// Name returns the replacement display name.
func (c UpdateLocationCommand) Name() string { return c.name }

// Address returns the replacement street address.
func (c UpdateLocationCommand) Address() string { return c.address }

// Point returns the replacement coordinates.
func (c UpdateLocationCommand) Point() kernel.GeoPoint { return c.point }

// Pickup returns the replacement pickup demand.
func (c UpdateLocationCommand) Pickup() int { return c.pickup }

// Delivery returns the replacement delivery demand.
func (c UpdateLocationCommand) Delivery() int { return c.delivery }

// ServiceTime returns the replacement service time in minutes.
func (c UpdateLocationCommand) ServiceTime() int { return c.serviceTime }

// Window returns the replacement service window.
func (c UpdateLocationCommand) Window() kernel.TimeWindow { return c.window }

// IsDepot reports the replacement depot flag.
func (c UpdateLocationCommand) IsDepot() bool { return c.isDepot }
