package queries

import (
	"errors"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/guard"
)

var (
	ErrGetAllComputesQueryIsNotConstructed = errors.New(
		"GetAllComputesQuery must be created via NewGetAllComputesQuery constructor",
	)
)

// GetAllComputesQuery lists compute jobs, optionally narrowed to one order
// or one status. A zero-value orderID means no order filter; an empty
// status means no status filter.
type GetAllComputesQuery struct {
	guard   guard.ConstructorGuard
	orderID kernel.UUID
	status  string
}

// NewGetAllComputesQuery creates a compute listing query. A non-empty
// status must name a known compute status.
func NewGetAllComputesQuery(orderID kernel.UUID, status string) (GetAllComputesQuery, error) {
	if status != "" {
		if _, err := compute.StatusFromString(status); err != nil {
			return GetAllComputesQuery{}, err
		}
	}

	return GetAllComputesQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
		status:  status,
	}, nil
}

// OrderID returns the order filter; the zero value disables it.
func (q GetAllComputesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Status returns the status filter; the empty string disables it.
func (q GetAllComputesQuery) Status() string {
	return q.status
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllComputesQueryIsNotConstructed if validation fails.
func (q GetAllComputesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllComputesQueryIsNotConstructed)
}

// GetAllComputesQueryResponse represents one compute job in the listing.
type GetAllComputesQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	Status           string
	StartTime        int64
	EndTime          int64
	FailReason       string
	TimeLimitSeconds int
}
