package ports

import (
	"context"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for location aggregates.
type LocationRepository interface {
	// Add persists a new location aggregate.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes to an existing location aggregate.
	Update(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location by its identifier regardless of status, so
	// snapshots and routes referencing deleted locations keep resolving.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetByIDs retrieves active locations for the given identifiers, in the
	// order requested. A missing or deleted id yields an ObjectNotFoundError.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*location.Location, error)

	// GetAllActive retrieves every active location.
	GetAllActive(ctx context.Context) ([]*location.Location, error)
}
