package ports

import (
	"context"

	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
)

// MatrixProvider is the outbound contract of the external geo-routing
// service that computes pairwise travel facts.
type MatrixProvider interface {
	// ComputeMatrix issues one batched request covering all given
	// coordinates as both origins and destinations. The response is a flat
	// element list addressed by (origin index, destination index) into
	// points; callers map indices back to location identifiers themselves.
	ComputeMatrix(ctx context.Context, points []kernel.GeoPoint) ([]distance.Element, error)
}
