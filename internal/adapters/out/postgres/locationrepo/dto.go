// Package locationrepo maps location aggregates to their relational
// representation.
package locationrepo

import (
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO is the database row for a location aggregate.
type LocationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Address     string
	Lat         float64
	Lng         float64
	Pickup      int
	Delivery    int
	ServiceTime int
	WindowStart int
	WindowEnd   int
	IsDepot     bool
	Status      string `gorm:"index"`
}

// TableName overrides GORM's default naming to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		Lat:         aggregate.Point().Lat(),
		Lng:         aggregate.Point().Lng(),
		Pickup:      aggregate.Pickup(),
		Delivery:    aggregate.Delivery(),
		ServiceTime: aggregate.ServiceTime(),
		WindowStart: aggregate.Window().Start(),
		WindowEnd:   aggregate.Window().End(),
		IsDepot:     aggregate.IsDepot(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	status, err := kernel.EntityStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(
		id, dto.Name, dto.Address, point,
		dto.Pickup, dto.Delivery, dto.ServiceTime,
		window, dto.IsDepot, status,
	)
}
