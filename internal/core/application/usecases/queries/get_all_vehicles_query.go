package queries

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/guard"
)

var (
	ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
		"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
	)
)

// GetAllVehiclesQuery retrieves every active vehicle in the fleet.
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to retrieve all active vehicles.
// This is a parameterless query that fetches the complete fleet list.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllVehiclesQueryIsNotConstructed if validation fails.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse represents vehicle information in the read model.
type GetAllVehiclesQueryResponse struct {
	ID        kernel.UUID
	Number    string
	Capacity  int
	FixedCost int
}
