package queries

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/guard"
)

var (
	ErrGetComputeRoutesQueryIsNotConstructed = errors.New(
		"GetComputeRoutesQuery must be created via NewGetComputeRoutesQuery constructor",
	)
)

// GetComputeRoutesQuery retrieves the solved routes of one compute job.
// Returns an empty result until the job completes.
type GetComputeRoutesQuery struct {
	guard     guard.ConstructorGuard
	computeID kernel.UUID
}

// NewGetComputeRoutesQuery creates a query for the routes of the given compute.
func NewGetComputeRoutesQuery(computeID kernel.UUID) (GetComputeRoutesQuery, error) {
	if err := computeID.Validate(); err != nil {
		return GetComputeRoutesQuery{}, err
	}

	return GetComputeRoutesQuery{
		guard:     guard.NewConstructorGuard(),
		computeID: computeID,
	}, nil
}

// ComputeID returns the identifier of the compute whose routes are requested.
func (q GetComputeRoutesQuery) ComputeID() kernel.UUID {
	return q.computeID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetComputeRoutesQueryIsNotConstructed if validation fails.
func (q GetComputeRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetComputeRoutesQueryIsNotConstructed)
}

// GetComputeRoutesQueryResponse represents one vehicle tour in the read model.
// Stops are ordered by their visit sequence.
type GetComputeRoutesQueryResponse struct {
	ID            kernel.UUID
	VehicleID     kernel.UUID
	TotalDistance int
	TotalTime     int
	TotalLoad     int
	Stops         []RouteStopResponse
}

// RouteStopResponse represents one visit within a tour in the read model.
type RouteStopResponse struct {
	LocationID  kernel.UUID
	Sequence    int
	ArrivalTime int
	Demand      int
}
