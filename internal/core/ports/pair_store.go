package ports

import (
	"context"

	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
)

// PairStore is the append-only store of directed travel pairs.
//
// Concurrent writers are resolved at the storage layer with insert-if-absent
// semantics, not with an in-process lock: multiple service instances may
// backfill overlapping missing pairs at once, and a pair, once stored, is
// never overwritten.
type PairStore interface {
	// GetPairs returns every cached directed pair whose endpoints are both
	// in ids.
	GetPairs(ctx context.Context, ids []kernel.UUID) ([]distance.Pair, error)

	// AddPairs inserts newly resolved pairs as one batch, ignoring pairs
	// that already exist.
	AddPairs(ctx context.Context, pairs []distance.Pair) error
}
