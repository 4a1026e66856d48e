// Package commands contains the write operations of the service: catalog
// maintenance, order creation, compute dispatch, callback reconciliation, and
// the expiry sweep. Every command validates itself, opens a unit of work, and
// commits or rolls back as one transaction.
package commands

import (
	"context"

	"routeplan/internal/core/ports"
)

// Unit of Work interfaces scoped to what each command actually touches.
// Handlers depend on the narrowest interface that covers their repositories.
type (
	// TxManager handles the transaction lifecycle shared by all units of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LocationRepoFactory provides the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// VehicleRepoFactory provides the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ComputeRepoFactory provides the compute repository within a transaction.
	ComputeRepoFactory interface {
		ComputeRepository() ports.ComputeRepository
	}

	// RouteRepoFactory provides the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// LocationUoW manages transactions for location-only operations.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	// LocationUoWFactory creates location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// OrderUoW manages transactions that build or modify orders. Order
	// creation reads the live catalog to capture snapshots, so the location
	// and vehicle repositories ride in the same transaction.
	OrderUoW interface {
		TxManager
		LocationRepoFactory
		VehicleRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ComputeUoW manages transactions for compute lifecycle operations.
	ComputeUoW interface {
		TxManager
		OrderRepoFactory
		ComputeRepoFactory
	}

	// ComputeUoWFactory creates compute unit of work instances.
	ComputeUoWFactory interface {
		Create() ComputeUoW
	}

	// ReconcileUoW manages transactions that finish a compute and persist its
	// routes atomically.
	ReconcileUoW interface {
		TxManager
		ComputeRepoFactory
		RouteRepoFactory
	}

	// ReconcileUoWFactory creates reconcile unit of work instances.
	ReconcileUoWFactory interface {
		Create() ReconcileUoW
	}
)
