package order

import (
	"errors"
	"fmt"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// MinSnapshotLocations is the smallest location snapshot that yields a
// solvable problem: one depot plus at least one stop.
const MinSnapshotLocations = 2

// Order is the aggregate root for a planning unit. Its snapshots are captured
// once at construction and are immutable afterward; accessors return copies
// so callers cannot mutate the stored records.
type Order struct {
	id        kernel.UUID
	locations []LocationRecord
	vehicles  []VehicleRecord
	status    kernel.EntityStatus
	createdAt int64
	updatedAt int64

	isConstructed bool
}

// NewOrder creates an active Order over the given snapshots.
// The location snapshot needs at least MinSnapshotLocations entries and the
// vehicle snapshot at least one.
func NewOrder(
	id kernel.UUID,
	locations []LocationRecord,
	vehicles []VehicleRecord,
	createdAt int64,
) (*Order, error) {
	o := &Order{
		status:        kernel.EntityActive,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLocations(locations),
		o.setVehicles(vehicles),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id kernel.UUID,
	locations []LocationRecord,
	vehicles []VehicleRecord,
	status kernel.EntityStatus,
	createdAt int64,
	updatedAt int64,
) (*Order, error) {
	o, err := NewOrder(id, locations, vehicles, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Locations returns a copy of the location snapshot in capture order.
func (o *Order) Locations() []LocationRecord {
	out := make([]LocationRecord, len(o.locations))
	copy(out, o.locations)
	return out
}

// Vehicles returns a copy of the vehicle snapshot in capture order.
func (o *Order) Vehicles() []VehicleRecord {
	out := make([]VehicleRecord, len(o.vehicles))
	copy(out, o.vehicles)
	return out
}

// Status returns the lifecycle status.
func (o *Order) Status() kernel.EntityStatus {
	return o.status
}

// CreatedAt returns the creation time as epoch seconds.
func (o *Order) CreatedAt() int64 {
	return o.createdAt
}

// UpdatedAt returns the last update time as epoch seconds, 0 if never updated.
func (o *Order) UpdatedAt() int64 {
	return o.updatedAt
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Delete logically removes the order. Computes referencing it stay intact.
func (o *Order) Delete(now int64) error {
	newStatus, err := o.status.Delete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLocations(records []LocationRecord) error {
	if len(records) < MinSnapshotLocations {
		return errs.NewValueIsInvalidErrorWithCause("location snapshot",
			fmt.Errorf("%d locations is fewer than the required %d", len(records), MinSnapshotLocations))
	}

	for _, r := range records {
		if err := r.ID.Validate(); err != nil {
			return err
		}
		if err := r.Point.Validate(); err != nil {
			return err
		}
	}

	o.locations = make([]LocationRecord, len(records))
	copy(o.locations, records)
	return nil
}

func (o *Order) setVehicles(records []VehicleRecord) error {
	if len(records) == 0 {
		return errs.NewValueIsRequiredError("vehicle snapshot")
	}

	for _, r := range records {
		if err := r.ID.Validate(); err != nil {
			return err
		}
	}

	o.vehicles = make([]VehicleRecord, len(records))
	copy(o.vehicles, records)
	return nil
}
