package commands

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"
	"routeplan/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand represents a request to register a serviceable point:
// a customer stop or a depot. Coordinates and the time window are validated
// at construction, so a constructed command always carries a usable location.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
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

// NewCreateLocationCommand creates a command to register a new location.
// Window bounds are minutes from midnight; demands and service time must be
// non-negative.
func NewCreateLocationCommand(
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
) (CreateLocationCommand, error) {
	cmd := CreateLocationCommand{
		isDepot: isDepot,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocationID(locationID),
		cmd.setName(name),
		cmd.setAddress(address),
		cmd.setPoint(lat, lng),
		cmd.setDemand(pickup, delivery),
		cmd.setServiceTime(serviceTime),
		cmd.setWindow(windowStart, windowEnd),
	); err != nil {
		return CreateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the identifier for the new location.
func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Name returns the display name.
func (c CreateLocationCommand) Name() string {
	return c.name
}

// Address returns the street address.
func (c CreateLocationCommand) Address() string {
	return c.address
}

// Point returns the geographic coordinates.
func (c CreateLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// Pickup returns the pickup demand.
func (c CreateLocationCommand) Pickup() int {
	return c.pickup
}

// Delivery returns the delivery demand.
func (c CreateLocationCommand) Delivery() int {
	return c.delivery
}

// ServiceTime returns the on-site service time in minutes.
func (c CreateLocationCommand) ServiceTime() int {
	return c.serviceTime
}

// Window returns the service time window.
func (c CreateLocationCommand) Window() kernel.TimeWindow {
	return c.window
}

// IsDepot reports whether the location is a vehicle start point.
func (c CreateLocationCommand) IsDepot() bool {
	return c.isDepot
}

func (c *CreateLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateLocationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateLocationCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateLocationCommand) setPoint(lat float64, lng float64) error {
	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *CreateLocationCommand) setDemand(pickup int, delivery int) error {
	if pickup < 0 {
		return errs.NewValueIsInvalidError("pickup")
	}
	if delivery < 0 {
		return errs.NewValueIsInvalidError("delivery")
	}

	c.pickup = pickup
	c.delivery = delivery
	return nil
}

func (c *CreateLocationCommand) setServiceTime(serviceTime int) error {
	if serviceTime < 0 {
		return errs.NewValueIsInvalidError("serviceTime")
	}

	c.serviceTime = serviceTime
	return nil
}

func (c *CreateLocationCommand) setWindow(start int, end int) error {
	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return err
	}

	c.window = window
	return nil
}
