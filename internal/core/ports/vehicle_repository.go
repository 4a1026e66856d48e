package ports

import (
	"context"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its identifier regardless of status.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByIDs retrieves active vehicles for the given identifiers, in the
	// order requested. A missing or deleted id yields an ObjectNotFoundError.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*vehicle.Vehicle, error)

	// GetAllActive retrieves every active vehicle.
	GetAllActive(ctx context.Context) ([]*vehicle.Vehicle, error)
}
