// Package routerepo maps solved routes and their stops to their relational
// representation. Rows are write-once.
package routerepo

import (
	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RouteDTO is the database row for one vehicle tour.
type RouteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ComputeID     uuid.UUID `gorm:"type:uuid;index"`
	VehicleID     uuid.UUID `gorm:"type:uuid"`
	TotalDistance int
	TotalTime     int
	TotalLoad     int
}

// TableName overrides GORM's default naming to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteStopDTO is the database row for one visit within a route. The
// unique index on (route_id, sequence) makes visit order a storage
// invariant, not just a convention.
type RouteStopDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_route_stop_sequence"`
	LocationID  uuid.UUID `gorm:"type:uuid"`
	Sequence    int       `gorm:"uniqueIndex:idx_route_stop_sequence"`
	ArrivalTime int
	Demand      int
}

// TableName overrides GORM's default naming to use "route_stops".
func (RouteStopDTO) TableName() string {
	return "route_stops"
}

func fromDomainRoute(route compute.Route) RouteDTO {
	return RouteDTO{
		ID:            route.ID.Bytes(),
		ComputeID:     route.ComputeID.Bytes(),
		VehicleID:     route.VehicleID.Bytes(),
		TotalDistance: route.TotalDistance,
		TotalTime:     route.TotalTime,
		TotalLoad:     route.TotalLoad,
	}
}

func fromDomainStop(stop compute.RouteStop) RouteStopDTO {
	return RouteStopDTO{
		ID:          stop.ID.Bytes(),
		RouteID:     stop.RouteID.Bytes(),
		LocationID:  stop.LocationID.Bytes(),
		Sequence:    stop.Sequence,
		ArrivalTime: stop.ArrivalTime,
		Demand:      stop.Demand,
	}
}

func toDomainRoute(dto RouteDTO) (compute.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return compute.Route{}, err
	}

	computeID, err := kernel.UUIDFromBytes(dto.ComputeID[:])
	if err != nil {
		return compute.Route{}, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return compute.Route{}, err
	}

	return compute.Route{
		ID:            id,
		ComputeID:     computeID,
		VehicleID:     vehicleID,
		TotalDistance: dto.TotalDistance,
		TotalTime:     dto.TotalTime,
		TotalLoad:     dto.TotalLoad,
	}, nil
}

func toDomainStop(dto RouteStopDTO) (compute.RouteStop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return compute.RouteStop{}, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return compute.RouteStop{}, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return compute.RouteStop{}, err
	}

	return compute.RouteStop{
		ID:          id,
		RouteID:     routeID,
		LocationID:  locationID,
		Sequence:    dto.Sequence,
		ArrivalTime: dto.ArrivalTime,
		Demand:      dto.Demand,
	}, nil
}
