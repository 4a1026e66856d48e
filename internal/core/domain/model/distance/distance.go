// Package distance contains the pairwise travel model: cached directed pairs
// and the elements returned by the external matrix provider.
package distance

import (
	"errors"
	"fmt"

	"routeplan/internal/core/domain/model/kernel"
)

// Condition is the traversal condition the matrix provider reports per
// element.
type Condition string

const (
	// RouteExists means the provider found a drivable route for the pair.
	RouteExists Condition = "ROUTE_EXISTS"
	// RouteNotFound means no feasible route connects the pair.
	RouteNotFound Condition = "ROUTE_NOT_FOUND"
)

// Pair is a cached directed travel fact between two locations. Pairs are
// append-only: once stored, a pair is treated as permanent and is never
// updated or deleted.
type Pair struct {
	From            kernel.UUID
	To              kernel.UUID
	DistanceMeters  int
	DurationMinutes int
	Polyline        string
}

// Key identifies a directed pair.
type Key struct {
	From kernel.UUID
	To   kernel.UUID
}

// KeyOf returns the identity key of a pair.
func KeyOf(p Pair) Key {
	return Key{From: p.From, To: p.To}
}

// Element is one entry of a provider matrix response. Origin and destination
// are indices into the coordinate list that was sent, never coordinates:
// mapping back to location identifiers is done by index.
type Element struct {
	OriginIndex      int
	DestinationIndex int
	DistanceMeters   int
	DurationMinutes  int
	Condition        Condition
}

// ErrNoRouteFound is the sentinel for pairs the provider reports as
// unreachable. A partially connected graph cannot serve the optimizer, so
// one unreachable pair fails the whole matrix completion.
var ErrNoRouteFound = errors.New("no feasible route between locations")

// NoRouteFoundError names the unreachable pair.
type NoRouteFoundError struct {
	From kernel.UUID
	To   kernel.UUID
}

// NewNoRouteFoundError creates a NoRouteFoundError for the given pair.
func NewNoRouteFoundError(from kernel.UUID, to kernel.UUID) *NoRouteFoundError {
	return &NoRouteFoundError{From: from, To: to}
}

func (e *NoRouteFoundError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrNoRouteFound, e.From, e.To)
}

func (e *NoRouteFoundError) Unwrap() error {
	return ErrNoRouteFound
}
