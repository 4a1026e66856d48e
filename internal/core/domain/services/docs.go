// Package services contains stateless domain services that coordinate
// multiple aggregates without owning any state themselves.
//
// MatrixService guarantees that a complete pairwise travel matrix exists for
// an order's location set, filling gaps from the external matrix provider and
// backfilling the pair store. RequestBuilder assembles a self-contained
// solver request from an order's snapshots and a completed matrix.
package services
