// Package vehicle contains the Vehicle aggregate: a truck or car the
// optimizer can assign a route to.
package vehicle

import (
	"errors"
	"fmt"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is a stable fleet entity. Like locations, vehicles are mutable
// between orders and captured into immutable order snapshots.
type Vehicle struct {
	id        kernel.UUID
	number    string
	capacity  int
	fixedCost int
	status    kernel.EntityStatus

	isConstructed bool
}

// NewVehicle creates an active Vehicle with zero fixed cost.
// Capacity must be positive.
func NewVehicle(id kernel.UUID, number string, capacity int) (*Vehicle, error) {
	v := &Vehicle{
		status:        kernel.EntityActive,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setNumber(number),
		v.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence.
func RestoreVehicle(
	id kernel.UUID,
	number string,
	capacity int,
	fixedCost int,
	status kernel.EntityStatus,
) (*Vehicle, error) {
	v, err := NewVehicle(id, number, capacity)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(v.SetFixedCost(fixedCost), status.Validate()); err != nil {
		return nil, err
	}

	v.status = status
	return v, nil
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle's identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Number returns the registration number or fleet code.
func (v *Vehicle) Number() string {
	return v.number
}

// Capacity returns the load capacity.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// FixedCost returns the fixed cost of putting this vehicle on the road.
func (v *Vehicle) FixedCost() int {
	return v.fixedCost
}

// Status returns the lifecycle status.
func (v *Vehicle) Status() kernel.EntityStatus {
	return v.status
}

// SetFixedCost sets the fixed usage cost. Must be non-negative.
func (v *Vehicle) SetFixedCost(cost int) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("fixed cost",
			fmt.Errorf("%d is negative", cost))
	}

	v.fixedCost = cost
	return nil
}

// Delete logically removes the vehicle.
func (v *Vehicle) Delete() error {
	newStatus, err := v.status.Delete()
	if err != nil {
		return err
	}

	v.status = newStatus
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	v.number = number
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}
