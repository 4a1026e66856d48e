package ports

import (
	"context"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
)

// RouteRepository defines the persistence contract for solved routes.
// Routes and stops are write-once: created during callback reconciliation,
// never updated afterward.
type RouteRepository interface {
	// Add persists one route and its ordered stops.
	Add(ctx context.Context, route compute.Route, stops []compute.RouteStop) error

	// GetByComputeID retrieves the routes of a compute.
	GetByComputeID(ctx context.Context, computeID kernel.UUID) ([]compute.Route, error)

	// GetStops retrieves a route's stops ordered by sequence.
	GetStops(ctx context.Context, routeID kernel.UUID) ([]compute.RouteStop, error)
}
