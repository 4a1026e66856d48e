package ports

import (
	"context"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
)

// ComputeRepository defines the persistence contract for compute jobs.
//
// Terminal transitions go through Finish, which performs a conditional update
// keyed on the current status not being terminal. That storage-level guard is
// what serializes concurrent callback deliveries and the cancel/callback race:
// whichever writer lands first wins, every later writer gets
// compute.ErrAlreadyTerminal.
type ComputeRepository interface {
	// Add persists a new compute job. The row must be committed before any
	// network call so a durable record exists even if dispatch never returns.
	Add(ctx context.Context, aggregate *compute.Compute) error

	// Get retrieves a compute by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*compute.Compute, error)

	// Finish applies a terminal transition if and only if the stored status
	// is not already terminal. Returns an ObjectNotFoundError when the row
	// does not exist and compute.ErrAlreadyTerminal when the transition lost
	// to an earlier one.
	Finish(ctx context.Context, id kernel.UUID, status compute.Status, failReason string, endTime int64) error

	// GetAllPendingBefore retrieves pending computes whose start time is
	// strictly before the cutoff, for the expiry sweeper.
	GetAllPendingBefore(ctx context.Context, cutoff int64) ([]*compute.Compute, error)
}
