// Package compute contains the Compute aggregate: one solver run derived
// from an order, with a terminal-once lifecycle.
//
// State machine:
//
//	initial ──> pending ──> (computing) ──┬──> completed
//	                                      ├──> failed
//	                                      └──> cancelled
//
// "computing" is an external fact, the gap between dispatch acceptance and
// callback arrival, and is never persisted by this service; a compute row
// observed in storage is pending or terminal. Terminal statuses never
// transition again.
package compute
