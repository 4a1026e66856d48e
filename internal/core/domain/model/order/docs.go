// Package order contains the Order aggregate. An order is a planning unit:
// it owns immutable snapshots of the locations and vehicles selected at
// creation time, and compute jobs are built from those snapshots only.
//
// The snapshots guarantee reproducibility: editing or deleting a Location or
// Vehicle after an order was created never changes what any compute derived
// from that order will send to the solver.
package order
