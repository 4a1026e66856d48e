package services

import (
	"context"
	"fmt"

	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/order"
	"routeplan/internal/core/ports"
	"routeplan/internal/pkg/errs"
)

// MatrixService guarantees that every directed pair among an order's
// locations has a known travel distance and duration.
//
// Resolution order:
//   - read every cached pair for the location set from the pair store
//   - if any directed pair is missing, issue one batched provider request
//     covering the full coordinate set
//   - persist only the freshly resolved pairs, then return the merged matrix
//
// A pair the provider reports as unreachable fails the whole operation with
// distance.ErrNoRouteFound: a partially connected matrix cannot be handed to
// the optimizer.
type MatrixService struct {
	pairStore ports.PairStore
	provider  ports.MatrixProvider
}

// NewMatrixService creates a MatrixService backed by the given store and
// provider.
func NewMatrixService(pairStore ports.PairStore, provider ports.MatrixProvider) (*MatrixService, error) {
	if pairStore == nil {
		return nil, errs.NewValueIsRequiredError("pairStore")
	}
	if provider == nil {
		return nil, errs.NewValueIsRequiredError("provider")
	}

	return &MatrixService{pairStore: pairStore, provider: provider}, nil
}

// EnsureMatrix returns the complete directed travel matrix for the given
// location records, keyed by (from, to). Self pairs are not part of the
// matrix; callers fill the diagonal with zeros.
func (s *MatrixService) EnsureMatrix(
	ctx context.Context, records []order.LocationRecord,
) (map[distance.Key]distance.Pair, error) {
	if len(records) < order.MinSnapshotLocations {
		return nil, errs.NewValueIsInvalidError("records")
	}

	ids := make([]kernel.UUID, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	cached, err := s.pairStore.GetPairs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("read cached pairs: %w", err)
	}

	matrix := make(map[distance.Key]distance.Pair, len(ids)*(len(ids)-1))
	for _, pair := range cached {
		matrix[distance.KeyOf(pair)] = pair
	}

	missing := missingKeys(ids, matrix)
	if len(missing) == 0 {
		return matrix, nil
	}

	fresh, err := s.resolveMissing(ctx, records, missing)
	if err != nil {
		return nil, err
	}

	if err = s.pairStore.AddPairs(ctx, fresh); err != nil {
		return nil, fmt.Errorf("store resolved pairs: %w", err)
	}

	for _, pair := range fresh {
		matrix[distance.KeyOf(pair)] = pair
	}

	return matrix, nil
}

// resolveMissing asks the provider for the full matrix and extracts the pairs
// that were not cached. Sending the full coordinate set keeps the provider
// call a single request regardless of which pairs are missing.
func (s *MatrixService) resolveMissing(
	ctx context.Context, records []order.LocationRecord, missing []distance.Key,
) ([]distance.Pair, error) {
	points := make([]kernel.GeoPoint, 0, len(records))
	for _, record := range records {
		points = append(points, record.Point)
	}

	elements, err := s.provider.ComputeMatrix(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("compute matrix: %w", err)
	}

	resolved := make(map[distance.Key]distance.Pair, len(elements))
	for _, element := range elements {
		if element.OriginIndex == element.DestinationIndex {
			continue
		}
		if element.OriginIndex < 0 || element.OriginIndex >= len(records) ||
			element.DestinationIndex < 0 || element.DestinationIndex >= len(records) {
			return nil, errs.NewValueIsInvalidError("element index")
		}

		from := records[element.OriginIndex].ID
		to := records[element.DestinationIndex].ID
		if element.Condition != distance.RouteExists {
			return nil, distance.NewNoRouteFoundError(from, to)
		}

		resolved[distance.Key{From: from, To: to}] = distance.Pair{
			From:            from,
			To:              to,
			DistanceMeters:  element.DistanceMeters,
			DurationMinutes: element.DurationMinutes,
		}
	}

	fresh := make([]distance.Pair, 0, len(missing))
	for _, key := range missing {
		pair, ok := resolved[key]
		if !ok {
			// An element the provider silently omitted is as unusable
			// as an explicit route-not-found.
			return nil, distance.NewNoRouteFoundError(key.From, key.To)
		}
		fresh = append(fresh, pair)
	}

	return fresh, nil
}

func missingKeys(ids []kernel.UUID, matrix map[distance.Key]distance.Pair) []distance.Key {
	var missing []distance.Key
	for _, from := range ids {
		for _, to := range ids {
			if from.IsEqual(to) {
				continue
			}

			key := distance.Key{From: from, To: to}
			if _, ok := matrix[key]; !ok {
				missing = append(missing, key)
			}
		}
	}

	return missing
}
