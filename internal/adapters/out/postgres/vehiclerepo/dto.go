// Package vehiclerepo maps vehicle aggregates to their relational
// representation.
package vehiclerepo

import (
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the database row for a vehicle aggregate.
type VehicleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    string
	Capacity  int
	FixedCost int
	Status    string `gorm:"index"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:        aggregate.ID().Bytes(),
		Number:    aggregate.Number(),
		Capacity:  aggregate.Capacity(),
		FixedCost: aggregate.FixedCost(),
		Status:    aggregate.Status().String(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := kernel.EntityStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Number, dto.Capacity, dto.FixedCost, status)
}
