package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per operation, keeping
// concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Callers manage the
// lifecycle explicitly: Begin, then Commit or Rollback. Rollback after a
// successful Commit is a no-op, which allows the deferred-rollback pattern
// in command handlers.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction if one is still open.
	Rollback(ctx context.Context) error

	// LocationRepository returns a LocationRepository bound to the current
	// transaction.
	LocationRepository() LocationRepository

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction.
	VehicleRepository() VehicleRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// ComputeRepository returns a ComputeRepository bound to the current
	// transaction.
	ComputeRepository() ComputeRepository

	// RouteRepository returns a RouteRepository bound to the current
	// transaction.
	RouteRepository() RouteRepository
}
