// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/guard"
)

var (
	ErrGetAllLocationsQueryIsNotConstructed = errors.New(
		"GetAllLocationsQuery must be created via NewGetAllLocationsQuery constructor",
	)
)

// GetAllLocationsQuery retrieves every active location in the catalog.
// Returns identities, coordinates and planning attributes for display
// and for composing planning requests.
//
// Example:
//
//	query := NewGetAllLocationsQuery()
//	handler := NewGetAllLocationsQueryHandler(db)
//
//	locations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve locations: %w", err)
//	}
//
//	for _, loc := range locations {
//	    fmt.Printf("Location %s at (%.5f, %.5f)\n", loc.Name, loc.Point.Lat(), loc.Point.Lng())
//	}
type GetAllLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllLocationsQuery creates a query to retrieve all active locations.
// This is a parameterless query that fetches the complete location list.
func NewGetAllLocationsQuery() GetAllLocationsQuery {
	return GetAllLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllLocationsQueryIsNotConstructed if validation fails.
func (q GetAllLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLocationsQueryIsNotConstructed)
}

// GetAllLocationsQueryResponse represents location information in the read model.
type GetAllLocationsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Address     string
	Point       kernel.GeoPoint
	Pickup      int
	Delivery    int
	ServiceTime int
	Window      kernel.TimeWindow
	IsDepot     bool
}
