package ports

import (
	"context"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Snapshots are stored as serialized copies; they are never re-joined to the
// live location or vehicle tables.
type OrderRepository interface {
	// Add persists a new order aggregate with its snapshots.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Only the
	// lifecycle status and update timestamp ever change; snapshots are
	// write-once.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
