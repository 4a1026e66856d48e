package compute

import (
	"routeplan/internal/core/domain/model/kernel"
)

// Route is one solved vehicle tour. Routes and their stops are write-once:
// they are created during callback reconciliation and never updated.
type Route struct {
	ID            kernel.UUID
	ComputeID     kernel.UUID
	VehicleID     kernel.UUID
	TotalDistance int
	TotalTime     int
	TotalLoad     int
}

// RouteStop is one visit within a route. Sequence is zero-based and unique
// within the route; stop 0 is the depot departure.
type RouteStop struct {
	ID          kernel.UUID
	RouteID     kernel.UUID
	LocationID  kernel.UUID
	Sequence    int
	ArrivalTime int
	Demand      int
}
