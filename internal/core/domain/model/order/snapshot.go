package order

import (
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/location"
	"routeplan/internal/core/domain/model/vehicle"
)

// LocationRecord is one entry of an order's location snapshot: a verbatim,
// point-in-time copy of a Location's routing-relevant fields. Records are
// plain values and never re-joined to the live location table.
type LocationRecord struct {
	ID          kernel.UUID
	Name        string
	Point       kernel.GeoPoint
	Pickup      int
	Delivery    int
	ServiceTime int
	Window      kernel.TimeWindow
	IsDepot     bool
}

// VehicleRecord is one entry of an order's vehicle snapshot.
type VehicleRecord struct {
	ID        kernel.UUID
	Number    string
	Capacity  int
	FixedCost int
}

// SnapshotLocation captures the routing-relevant state of a Location.
func SnapshotLocation(l *location.Location) LocationRecord {
	return LocationRecord{
		ID:          l.ID(),
		Name:        l.Name(),
		Point:       l.Point(),
		Pickup:      l.Pickup(),
		Delivery:    l.Delivery(),
		ServiceTime: l.ServiceTime(),
		Window:      l.Window(),
		IsDepot:     l.IsDepot(),
	}
}

// SnapshotVehicle captures the routing-relevant state of a Vehicle.
func SnapshotVehicle(v *vehicle.Vehicle) VehicleRecord {
	return VehicleRecord{
		ID:        v.ID(),
		Number:    v.Number(),
		Capacity:  v.Capacity(),
		FixedCost: v.FixedCost(),
	}
}
