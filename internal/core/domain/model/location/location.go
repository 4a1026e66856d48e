package location

import (
	"errors"
	"fmt"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a serviceable point owned by the operator: a depot or a
// customer stop. Locations are mutable between orders; an order captures an
// immutable snapshot of them at creation time, so later edits never affect
// already-created orders.
//
// Invariants:
//   - identity, name, address, and coordinates are always valid
//   - pickup/delivery demand and service time are non-negative
//   - deletion is logical (status flag), never physical
type Location struct {
	id          kernel.UUID
	name        string
	address     string
	point       kernel.GeoPoint
	pickup      int
	delivery    int
	serviceTime int
	window      kernel.TimeWindow
	isDepot     bool
	status      kernel.EntityStatus

	isConstructed bool
}

// NewLocation creates an active Location with a full-day service window and
// zero demand. Demand, service time, window, and the depot flag are set
// through the dedicated mutators.
func NewLocation(id kernel.UUID, name string, address string, point kernel.GeoPoint) (*Location, error) {
	loc := &Location{
		window:        kernel.FullDayWindow(),
		status:        kernel.EntityActive,
		isConstructed: true,
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setDetails(name, address, point),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// RestoreLocation reconstructs a Location from persistence.
func RestoreLocation(
	id kernel.UUID,
	name string,
	address string,
	point kernel.GeoPoint,
	pickup int,
	delivery int,
	serviceTime int,
	window kernel.TimeWindow,
	isDepot bool,
	status kernel.EntityStatus,
) (*Location, error) {
	loc, err := NewLocation(id, name, address, point)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		loc.SetDemand(pickup, delivery),
		loc.SetServiceTime(serviceTime),
		loc.SetWindow(window),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	loc.isDepot = isDepot
	loc.status = status
	return loc, nil
}

// Validate ensures the Location was created through a constructor.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// ID returns the location's identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the display name.
func (l *Location) Name() string {
	return l.name
}

// Address returns the street address.
func (l *Location) Address() string {
	return l.address
}

// Point returns the geographic coordinates.
func (l *Location) Point() kernel.GeoPoint {
	return l.point
}

// Pickup returns the pickup demand at this location.
func (l *Location) Pickup() int {
	return l.pickup
}

// Delivery returns the delivery demand at this location.
func (l *Location) Delivery() int {
	return l.delivery
}

// ServiceTime returns the on-site service time in minutes.
func (l *Location) ServiceTime() int {
	return l.serviceTime
}

// Window returns the service time window.
func (l *Location) Window() kernel.TimeWindow {
	return l.window
}

// IsDepot reports whether this location is a vehicle start point.
func (l *Location) IsDepot() bool {
	return l.isDepot
}

// Status returns the lifecycle status.
func (l *Location) Status() kernel.EntityStatus {
	return l.status
}

// UpdateDetails replaces name, address, and coordinates.
func (l *Location) UpdateDetails(name string, address string, point kernel.GeoPoint) error {
	return l.setDetails(name, address, point)
}

// SetDemand sets the pickup and delivery demand. Both must be non-negative.
func (l *Location) SetDemand(pickup int, delivery int) error {
	if pickup < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pickup",
			fmt.Errorf("%d is negative", pickup))
	}
	if delivery < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery",
			fmt.Errorf("%d is negative", delivery))
	}

	l.pickup = pickup
	l.delivery = delivery
	return nil
}

// SetServiceTime sets the on-site service time in minutes.
func (l *Location) SetServiceTime(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("service time",
			fmt.Errorf("%d is negative", minutes))
	}

	l.serviceTime = minutes
	return nil
}

// SetWindow replaces the service time window.
func (l *Location) SetWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	l.window = window
	return nil
}

// MarkDepot flags the location as a vehicle start point.
func (l *Location) MarkDepot(isDepot bool) {
	l.isDepot = isDepot
}

// Delete logically removes the location. Existing order snapshots that
// reference it are unaffected.
func (l *Location) Delete() error {
	newStatus, err := l.status.Delete()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setDetails(name string, address string, point kernel.GeoPoint) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if err := point.Validate(); err != nil {
		return err
	}

	l.name = name
	l.address = address
	l.point = point
	return nil
}
