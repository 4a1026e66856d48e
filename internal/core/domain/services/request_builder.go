package services

import (
	"errors"
	"fmt"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/order"
	"routeplan/internal/core/ports"
	"routeplan/internal/pkg/errs"
)

// ErrIncompleteMatrix is returned when the travel matrix lacks a directed
// pair the request needs. It indicates a programming or data error upstream:
// EnsureMatrix must run before a request is built.
var ErrIncompleteMatrix = errors.New("travel matrix is incomplete")

// IncompleteMatrixError carries the expected and available directed pair
// counts, plus the first missing pair as detail.
type IncompleteMatrixError struct {
	Expected int
	Actual   int
	From     kernel.UUID
	To       kernel.UUID
}

// NewIncompleteMatrixError creates an IncompleteMatrixError.
func NewIncompleteMatrixError(expected int, actual int, from kernel.UUID, to kernel.UUID) *IncompleteMatrixError {
	return &IncompleteMatrixError{Expected: expected, Actual: actual, From: from, To: to}
}

func (e *IncompleteMatrixError) Error() string {
	return fmt.Sprintf("%s: %d pairs expected, %d available (first missing from %s to %s)",
		ErrIncompleteMatrix, e.Expected, e.Actual, e.From, e.To)
}

func (e *IncompleteMatrixError) Unwrap() error {
	return ErrIncompleteMatrix
}

// RequestBuilder assembles solver requests from order snapshots.
//
// The request is self-contained: it embeds copies of every location and
// vehicle fact plus the full distance and time matrices, so the solver needs
// no access to this service's storage. Matrix rows follow the snapshot order
// of the order's locations, and the depot index points at the first location
// marked as depot, falling back to index zero.
type RequestBuilder struct{}

// NewRequestBuilder creates a RequestBuilder.
func NewRequestBuilder() RequestBuilder {
	return RequestBuilder{}
}

// Build produces the solver request for the given compute job, order, and
// completed matrix.
func (b RequestBuilder) Build(
	computeID kernel.UUID,
	aggregate *order.Order,
	matrix map[distance.Key]distance.Pair,
	policy compute.Policy,
	webhookURL string,
) (*ports.SolveRequest, error) {
	if err := computeID.Validate(); err != nil {
		return nil, err
	}
	if aggregate == nil {
		return nil, errs.NewValueIsRequiredError("aggregate")
	}
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if webhookURL == "" {
		return nil, errs.NewValueIsRequiredError("webhookURL")
	}

	records := aggregate.Locations()

	locations := make([]ports.SolveLocation, 0, len(records))
	depotIndex := 0
	for i, record := range records {
		if record.IsDepot && depotIndex == 0 {
			depotIndex = i
		}

		locations = append(locations, ports.SolveLocation{
			ID:              record.ID.String(),
			Name:            record.Name,
			Lat:             record.Point.Lat(),
			Lng:             record.Point.Lng(),
			Pickup:          record.Pickup,
			Delivery:        record.Delivery,
			ServiceTime:     record.ServiceTime,
			TimeWindowStart: record.Window.Start(),
			TimeWindowEnd:   record.Window.End(),
		})
	}

	vehicles := make([]ports.SolveVehicle, 0, len(aggregate.Vehicles()))
	for _, record := range aggregate.Vehicles() {
		vehicles = append(vehicles, ports.SolveVehicle{
			ID:        record.ID.String(),
			Capacity:  record.Capacity,
			FixedCost: record.FixedCost,
		})
	}

	distances, times, err := buildMatrices(records, matrix)
	if err != nil {
		return nil, err
	}

	return &ports.SolveRequest{
		ComputeID:        computeID.String(),
		WebhookURL:       webhookURL,
		DepotIndex:       depotIndex,
		Locations:        locations,
		Vehicles:         vehicles,
		DistanceMatrix:   distances,
		TimeMatrix:       times,
		TimeLimitSeconds: policy.TimeLimitOrDefault(),
	}, nil
}

// buildMatrices expands the pair map into dense n by n matrices with a zero
// diagonal, in snapshot order. The full scan counts every available pair, so
// an incomplete matrix is reported with its expected and actual pair counts.
func buildMatrices(
	records []order.LocationRecord, matrix map[distance.Key]distance.Pair,
) ([][]int, [][]int, error) {
	n := len(records)
	expected := n * (n - 1)
	distances := make([][]int, n)
	times := make([][]int, n)

	var missing []distance.Key
	for i, from := range records {
		distances[i] = make([]int, n)
		times[i] = make([]int, n)

		for j, to := range records {
			if i == j {
				continue
			}

			pair, ok := matrix[distance.Key{From: from.ID, To: to.ID}]
			if !ok {
				missing = append(missing, distance.Key{From: from.ID, To: to.ID})
				continue
			}

			distances[i][j] = pair.DistanceMeters
			times[i][j] = pair.DurationMinutes
		}
	}

	if len(missing) > 0 {
		first := missing[0]
		return nil, nil, NewIncompleteMatrixError(expected, expected-len(missing), first.From, first.To)
	}

	return distances, times, nil
}
