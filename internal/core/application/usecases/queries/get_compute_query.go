package queries

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/guard"
)

var (
	ErrGetComputeQueryIsNotConstructed = errors.New(
		"GetComputeQuery must be created via NewGetComputeQuery constructor",
	)
)

// GetComputeQuery retrieves the current state of one compute job.
// Callers poll this read model to observe the job progressing towards a
// terminal status.
//
// Example:
//
//	query, err := NewGetComputeQuery(computeID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve compute: %w", err)
//	}
//
//	fmt.Printf("Compute %s is %s\n", status.ID, status.Status)
type GetComputeQuery struct {
	guard     guard.ConstructorGuard
	computeID kernel.UUID
}

// NewGetComputeQuery creates a query for the compute with the given id.
func NewGetComputeQuery(computeID kernel.UUID) (GetComputeQuery, error) {
	if err := computeID.Validate(); err != nil {
		return GetComputeQuery{}, err
	}

	return GetComputeQuery{
		guard:     guard.NewConstructorGuard(),
		computeID: computeID,
	}, nil
}

// ComputeID returns the identifier of the compute being looked up.
func (q GetComputeQuery) ComputeID() kernel.UUID {
	return q.computeID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetComputeQueryIsNotConstructed if validation fails.
func (q GetComputeQuery) Validate() error {
	return q.guard.Validate(ErrGetComputeQueryIsNotConstructed)
}

// GetComputeQueryResponse represents one compute job in the read model.
// EndTime is zero while the job has not reached a terminal status and
// FailReason is empty unless the job failed.
type GetComputeQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	Status           string
	StartTime        int64
	EndTime          int64
	FailReason       string
	TimeLimitSeconds int
}
